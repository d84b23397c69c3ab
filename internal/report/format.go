package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when a format name is not recognized.
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output format.
type Format string

const (
	// FormatLiteral prints the summaries as a single structured literal.
	FormatLiteral Format = "literal"
	// FormatJSON prints the report as JSON.
	FormatJSON Format = "json"
	// FormatMarkdown prints the report as a Markdown document.
	FormatMarkdown Format = "markdown"
	// FormatCSV prints the summaries as CSV.
	FormatCSV Format = "csv"
)

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatLiteral, FormatJSON, FormatMarkdown, FormatCSV}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// ParseFormat converts a user supplied name into a Format.
// Matching ignores case and surrounding whitespace; "md" is accepted
// as a short form of markdown.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "md" {
		return FormatMarkdown, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, s, formatList())
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
