package table

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceConsumed is returned when Each is called on a Source that has
	// already been iterated. Sources are single-pass; use Collect to keep rows.
	ErrSourceConsumed = errors.New("tabular source already consumed")

	// ErrUnsupportedEncoding is returned when an encoding label is not recognised.
	ErrUnsupportedEncoding = errors.New("unsupported character encoding")
)

// fileAccessHint is appended to every FileAccessError message.
const fileAccessHint = "Provide correct filenames with filename extensions."

// FileAccessError is returned when a path cannot be opened or read.
// The underlying error usually is an *fs.PathError, so the message names
// the path, and errors.Is(err, fs.ErrNotExist) works through Unwrap.
type FileAccessError struct {
	// Path is the path as supplied by the caller.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error returns the cause followed by a corrective hint.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%v. %s", e.Err, fileAccessHint)
}

// Unwrap returns the underlying cause.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed CSV text.
type ParseError struct {
	// Line is the 1-based line where the error was detected, or 0 if unknown.
	Line int

	// Err is the underlying csv error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed CSV at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed CSV: %v", e.Err)
}

// Unwrap returns the underlying csv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
