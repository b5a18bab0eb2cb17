// Package textsource resolves the text payload for insert and append
// operations. The payload comes either from a flag argument or from
// standard input; either way it is resolved to a plain string exactly
// once, before the operation is constructed, so downstream code never
// knows where the text came from.
package textsource

import (
	"io"
	"strings"

	"github.com/FocuswithJustin/linekit/core/errors"
)

// Source yields the text payload for an operation.
type Source interface {
	Resolve() (string, error)
}

// Literal is a payload supplied directly on the command line.
type Literal string

func (l Literal) Resolve() (string, error) {
	return string(l), nil
}

// Stdin reads the payload from a reader (normally os.Stdin) until EOF,
// trimming trailing whitespace the way a shell pipeline leaves a
// trailing newline.
type Stdin struct {
	R io.Reader
}

func (s Stdin) Resolve() (string, error) {
	data, err := io.ReadAll(s.R)
	if err != nil {
		return "", errors.NewIO("read", "stdin", err)
	}
	return strings.TrimRight(string(data), " \t\r\n"), nil
}
