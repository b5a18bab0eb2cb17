// Package lineedit implements the positional line-mutation engine.
// A Buffer is an ordered sequence of newline-stripped lines; Apply
// transforms a Buffer according to a single Operation and returns the
// result without touching the input. The engine performs no I/O.
package lineedit

import (
	"github.com/FocuswithJustin/linekit/core/errors"
)

// Buffer is the in-memory content of one file, one entry per line.
// Line numbers presented to callers are 1-based; offsets into the
// slice are 0-based.
type Buffer []string

// Operation is one positional mutation. Exactly one concrete variant
// is constructed per invocation; building one from command-line flags
// is the caller's job.
type Operation interface {
	isOperation()
}

// InsertAt places Text at the 1-based Line. When Line addresses an
// existing line the text is inserted before it and later lines shift
// down, unless Overwrite is set, in which case the existing line is
// replaced in place. When Line is past the end of the buffer the gap
// is filled with empty lines and the text lands at exactly Line, for
// both modes.
type InsertAt struct {
	Line      int
	Text      string
	Overwrite bool
}

// AppendEnd adds Text as a new final line, unconditionally.
type AppendEnd struct {
	Text string
}

// ClearRange removes the 1-based inclusive range Start..End. A nil End
// means "through the last line". Start past the end of the buffer is a
// no-op; End past the end clamps to the last line.
type ClearRange struct {
	Start int
	End   *int
}

func (InsertAt) isOperation()   {}
func (AppendEnd) isOperation()  {}
func (ClearRange) isOperation() {}

// Apply computes the buffer that results from op. The input buffer is
// never modified; the returned buffer shares no backing storage with
// it. Apply is pure: identical inputs always produce identical output.
func Apply(buf Buffer, op Operation) (Buffer, error) {
	switch o := op.(type) {
	case InsertAt:
		return applyInsert(buf, o)
	case AppendEnd:
		return applyAppend(buf, o)
	case ClearRange:
		return applyClear(buf, o)
	default:
		return nil, errors.NewConfig("operation", "unknown operation variant")
	}
}

func applyInsert(buf Buffer, op InsertAt) (Buffer, error) {
	if op.Line < 1 {
		return nil, errors.NewLineNumber(op.Line)
	}

	n := len(buf)
	if op.Line > n {
		// Past end of file: extend to exactly op.Line lines, filling
		// the gap with empty lines. Overwrite and insert agree here
		// since there is nothing at the target to shift or replace.
		out := make(Buffer, op.Line)
		copy(out, buf)
		out[op.Line-1] = op.Text
		return out, nil
	}

	if op.Overwrite {
		out := make(Buffer, n)
		copy(out, buf)
		out[op.Line-1] = op.Text
		return out, nil
	}

	out := make(Buffer, 0, n+1)
	out = append(out, buf[:op.Line-1]...)
	out = append(out, op.Text)
	out = append(out, buf[op.Line-1:]...)
	return out, nil
}

func applyAppend(buf Buffer, op AppendEnd) (Buffer, error) {
	out := make(Buffer, 0, len(buf)+1)
	out = append(out, buf...)
	out = append(out, op.Text)
	return out, nil
}

func applyClear(buf Buffer, op ClearRange) (Buffer, error) {
	if op.Start < 1 {
		return nil, errors.NewLineNumber(op.Start)
	}
	if op.End != nil {
		if *op.End < 1 {
			return nil, errors.NewLineNumber(*op.End)
		}
		if op.Start > *op.End {
			return nil, errors.NewRange(op.Start, *op.End)
		}
	}

	n := len(buf)
	if op.Start > n {
		// Range starts past the last line: no-op, not an error.
		out := make(Buffer, n)
		copy(out, buf)
		return out, nil
	}

	end := n
	if op.End != nil && *op.End < n {
		end = *op.End
	}

	out := make(Buffer, 0, n-(end-op.Start+1))
	out = append(out, buf[:op.Start-1]...)
	out = append(out, buf[end:]...)
	return out, nil
}
