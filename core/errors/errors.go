// Package errors provides standardized error types and helpers for the
// linekit codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidLineNumber indicates a line number below 1.
	ErrInvalidLineNumber = errors.New("invalid line number")
	// ErrInvalidRange indicates a clear range whose start exceeds its end.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidConfig indicates conflicting or missing command-line flags.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// LineNumberError represents a line-number validation failure with context.
type LineNumberError struct {
	Line int    // The rejected line number
	Path string // File being processed, if known
	Err  error  // Underlying error, if any
}

func (e *LineNumberError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: invalid line number %d: line numbers start at 1", e.Path, e.Line)
	}
	return fmt.Sprintf("invalid line number %d: line numbers start at 1", e.Line)
}

func (e *LineNumberError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidLineNumber
}

// RangeError represents a clear-range validation failure with context.
type RangeError struct {
	Start int    // Requested first line
	End   int    // Requested last line
	Path  string // File being processed, if known
	Err   error  // Underlying error, if any
}

func (e *RangeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: invalid range %d,%d: start must not exceed end", e.Path, e.Start, e.End)
	}
	return fmt.Sprintf("invalid range %d,%d: start must not exceed end", e.Start, e.End)
}

func (e *RangeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidRange
}

// IOError represents an I/O operation error with context.
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// BackupError represents a failure to create or verify a pre-mutation backup.
type BackupError struct {
	Path       string // Original file path
	BackupPath string // Backup destination, if known
	Message    string // Error details
	Err        error  // Underlying error, if any
}

func (e *BackupError) Error() string {
	if e.BackupPath != "" {
		return fmt.Sprintf("failed to back up %s to %s: %s", e.Path, e.BackupPath, e.Message)
	}
	return fmt.Sprintf("failed to back up %s: %s", e.Path, e.Message)
}

func (e *BackupError) Unwrap() error {
	return e.Err
}

// ConfigError represents conflicting or missing command-line flags.
type ConfigError struct {
	Flag    string // Flag (or flag group) that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ConfigError) Error() string {
	if e.Flag != "" {
		return fmt.Sprintf("invalid configuration for %s: %s", e.Flag, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidConfig
}

// Helper functions for creating common errors

// NewLineNumber creates a LineNumberError
func NewLineNumber(line int) *LineNumberError {
	return &LineNumberError{
		Line: line,
	}
}

// NewRange creates a RangeError
func NewRange(start, end int) *RangeError {
	return &RangeError{
		Start: start,
		End:   end,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewBackup creates a BackupError
func NewBackup(path, backupPath, message string) *BackupError {
	return &BackupError{
		Path:       path,
		BackupPath: backupPath,
		Message:    message,
	}
}

// NewConfig creates a ConfigError
func NewConfig(flag, message string) *ConfigError {
	return &ConfigError{
		Flag:    flag,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
