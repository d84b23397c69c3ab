// Package log provides structured logging for visitmerge, built on top of
// the standard slog package.
//
// The RedactingHandler wraps any slog.Handler and masks attributes that
// carry personal data. Person rows contain names and surnames, and verbose
// runs log per-person details, so those values are replaced with MaskValue
// before they reach the output.
//
// # Usage
//
//	logger := log.NewRedactingLogger(os.Stderr, verbose)
//	logger.Debug("person summary",
//	    "id", s.ID,           // kept
//	    "name", s.Name,       // masked
//	    "surname", s.Surname, // masked
//	    "visits", s.Visits,   // kept
//	)
package log
