package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() while still showing a readable message.
var (
	// ErrNoInput is returned when either input path is empty.
	ErrNoInput = errors.New("no input specified: provide a persons CSV and a visits CSV")

	// ErrInvalidFormat is returned when the output format is not supported.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidEncoding is returned when the input encoding label is unknown.
	ErrInvalidEncoding = errors.New("invalid input encoding")

	// ErrInvalidLogFormat is returned when the log format is neither text nor json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")
)
