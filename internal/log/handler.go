package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// personalKeys contains attribute keys that are always masked.
var personalKeys = map[string]bool{
	// Person record columns
	"name":    true,
	"surname": true,

	// Common spellings in other inputs
	"first_name": true,
	"firstname":  true,
	"last_name":  true,
	"lastname":   true,
	"full_name":  true,
	"fullname":   true,

	// Contact details
	"email":   true,
	"phone":   true,
	"address": true,
}

// personalKeywords are masked when they appear anywhere in a key.
// "name" alone is not listed: keys like "filename" or "hostname" are not personal.
var personalKeywords = []string{
	"surname", "email", "phone", "address", "pesel", "passport", "birth",
}

// personalPatterns match values that are masked regardless of key.
var personalPatterns = []*regexp.Regexp{
	// Email addresses
	regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`),

	// Polish national identification number
	regexp.MustCompile(`^\d{11}$`),
}

// MaskValue is the string used to replace personal values.
const MaskValue = "***REDACTED***"

// RedactingHandler wraps an slog.Handler and masks personal data in
// attributes before passing records on.
type RedactingHandler struct {
	handler slog.Handler
}

// NewRedactingHandler creates a RedactingHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewRedactingHandler(handler slog.Handler) *RedactingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactingHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(h.redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes masked and added.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redactAttr(a)
	}
	return &RedactingHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name)}
}

// redactAttr masks a single attribute, recursing into groups.
func (h *RedactingHandler) redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			redacted[i] = h.redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	keyLower := strings.ToLower(a.Key)
	if personalKeys[keyLower] || containsPersonalKeyword(keyLower) {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString && isPersonalValue(a.Value.String()) {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

// containsPersonalKeyword checks if the key contains a personal-data keyword.
func containsPersonalKeyword(key string) bool {
	for _, keyword := range personalKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// isPersonalValue checks if a value matches a personal-data pattern.
func isPersonalValue(value string) bool {
	for _, pattern := range personalPatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// NewRedactingLogger creates a text slog.Logger that masks personal data.
// When verbose is true the level is Debug, otherwise Warn.
func NewRedactingLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactingHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewRedactingJSONLogger creates a JSON slog.Logger that masks personal data.
func NewRedactingJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactingHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

// handlerOptions maps verbosity to a level.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
