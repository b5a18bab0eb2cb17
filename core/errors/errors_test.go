package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestLineNumberError(t *testing.T) {
	tests := []struct {
		name     string
		err      *LineNumberError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with path",
			err:      &LineNumberError{Line: 0, Path: "notes.txt"},
			wantMsg:  "notes.txt: invalid line number 0: line numbers start at 1",
			wantBase: ErrInvalidLineNumber,
		},
		{
			name:     "without path",
			err:      &LineNumberError{Line: -3},
			wantMsg:  "invalid line number -3: line numbers start at 1",
			wantBase: ErrInvalidLineNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestRangeError(t *testing.T) {
	err := &RangeError{Start: 5, End: 2}
	want := "invalid range 5,2: start must not exceed end"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidRange) {
		t.Error("RangeError does not unwrap to ErrInvalidRange")
	}

	err = &RangeError{Start: 5, End: 2, Path: "notes.txt"}
	want = "notes.txt: invalid range 5,2: start must not exceed end"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIOError(t *testing.T) {
	underlyingErr := fmt.Errorf("permission denied")
	err := &IOError{Operation: "write", Path: "/etc/hosts", Err: underlyingErr}
	want := "failed to write /etc/hosts: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := err.Unwrap(); got != underlyingErr {
		t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
	}

	err = &IOError{Operation: "read", Err: underlyingErr}
	want = "failed to read: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestBackupError(t *testing.T) {
	err := &BackupError{Path: "a.txt", BackupPath: "a.txt.bak", Message: "disk full"}
	want := "failed to back up a.txt to a.txt.bak: disk full"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &BackupError{Path: "a.txt", Message: "cannot read original"}
	want = "failed to back up a.txt: cannot read original"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Flag: "--diff", Message: "requires --dry-run"}
	want := "invalid configuration for --diff: requires --dry-run"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("ConfigError does not unwrap to ErrInvalidConfig")
	}
}

func TestConstructors(t *testing.T) {
	if err := NewLineNumber(0); err.Line != 0 {
		t.Errorf("NewLineNumber: Line = %d, want 0", err.Line)
	}
	if err := NewRange(3, 1); err.Start != 3 || err.End != 1 {
		t.Errorf("NewRange: got %d,%d, want 3,1", err.Start, err.End)
	}
	underlyingErr := fmt.Errorf("boom")
	if err := NewIO("read", "x.txt", underlyingErr); err.Err != underlyingErr {
		t.Error("NewIO did not keep the underlying error")
	}
	if err := NewBackup("x.txt", "x.txt.bak", "nope"); err.BackupPath != "x.txt.bak" {
		t.Error("NewBackup did not keep the backup path")
	}
	if err := NewConfig("--line", "bad"); err.Flag != "--line" {
		t.Error("NewConfig did not keep the flag")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := fmt.Errorf("base")
	wrapped := Wrap(base, "context")
	if wrapped.Error() != "context: base" {
		t.Errorf("Wrap() = %q, want %q", wrapped.Error(), "context: base")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error does not match base with errors.Is")
	}

	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
	wrapped = Wrapf(base, "file %s", "a.txt")
	if wrapped.Error() != "file a.txt: base" {
		t.Errorf("Wrapf() = %q, want %q", wrapped.Error(), "file a.txt: base")
	}
}

func TestIsAndAs(t *testing.T) {
	err := NewLineNumber(0)
	if !Is(err, ErrInvalidLineNumber) {
		t.Error("Is() failed to match sentinel")
	}

	var lineErr *LineNumberError
	if !As(fmt.Errorf("wrapped: %w", err), &lineErr) {
		t.Error("As() failed to extract LineNumberError")
	}
	if lineErr.Line != 0 {
		t.Errorf("extracted Line = %d, want 0", lineErr.Line)
	}
}
