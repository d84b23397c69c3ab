package main

import (
	"errors"
	"fmt"

	"github.com/shushuda/visitmerge/internal/merge"
	"github.com/shushuda/visitmerge/internal/table"
)

// Process exit codes.
const (
	// ExitOK is returned after a successful run.
	ExitOK = 0
	// ExitFailure is returned for input, configuration and output errors.
	ExitFailure = 1
	// ExitUsage is returned when the command line itself is wrong.
	ExitUsage = 2
)

// usageHint is printed after command line errors.
const usageHint = "Usage: visitmerge [flags] <persons.csv> <visits.csv>\nRun 'visitmerge --help' for more information."

// ArgumentCountError is returned when the merge is not given exactly
// two file arguments.
type ArgumentCountError struct {
	Got int
}

// Error implements the error interface.
func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("expected 2 arguments (persons file and visits file), got %d", e.Got)
}

// FlagError wraps a flag parsing failure reported by cobra.
type FlagError struct {
	Err error
}

// Error implements the error interface.
func (e *FlagError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FlagError) Unwrap() error {
	return e.Err
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var argErr *ArgumentCountError
	var flagErr *FlagError
	if errors.As(err, &argErr) || errors.As(err, &flagErr) {
		return ExitUsage
	}
	return ExitFailure
}

// isUsageError reports whether err should be followed by the usage hint.
func isUsageError(err error) bool {
	return exitCode(err) == ExitUsage
}

// errorMessage returns the text printed on stderr for err.
// Schema and file errors are printed with their own message even when
// wrapped, since that message is meant for the user as is.
func errorMessage(err error) string {
	var schemaErr *merge.SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr.Error()
	}
	var fileErr *table.FileAccessError
	if errors.As(err, &fileErr) {
		return fileErr.Error()
	}
	return err.Error()
}
