package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shushuda/visitmerge/internal/model"
)

// LiteralWriter prints the summaries as one structured literal on a single
// line, for example:
//
//	[{'id': '1', 'name': 'Adam', 'surname': 'Kowalski', 'visits': 0}]
//
// String values are single quoted unless they contain a single quote and no
// double quote. Non-printable characters are escaped.
type LiteralWriter struct {
	baseWriter
}

// NewLiteralWriter creates a LiteralWriter that outputs to the given writer.
func NewLiteralWriter(output io.Writer) *LiteralWriter {
	return &LiteralWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report summaries followed by a newline.
func (w *LiteralWriter) Write(report *model.MergeReport) (int, error) {
	return io.WriteString(w.output, Literal(report.Summaries)+"\n")
}

// Literal renders summaries in the literal notation without a
// trailing newline. An empty list renders as "[]".
func Literal(summaries []model.PersonSummary) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range summaries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('{')
		writeLiteralPair(&sb, model.ColumnID, quoteLiteral(s.ID))
		sb.WriteString(", ")
		writeLiteralPair(&sb, model.ColumnName, quoteLiteral(s.Name))
		sb.WriteString(", ")
		writeLiteralPair(&sb, model.ColumnSurname, quoteLiteral(s.Surname))
		sb.WriteString(", ")
		writeLiteralPair(&sb, "visits", strconv.Itoa(s.Visits))
		sb.WriteByte('}')
	}
	sb.WriteByte(']')
	return sb.String()
}

func writeLiteralPair(sb *strings.Builder, key, value string) {
	sb.WriteString(quoteLiteral(key))
	sb.WriteString(": ")
	sb.WriteString(value)
}

// quoteLiteral quotes s as a string literal.
func quoteLiteral(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
	}
	sb.WriteRune(quote)
	return sb.String()
}
