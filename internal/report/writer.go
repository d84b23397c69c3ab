package report

import (
	"io"

	"github.com/shushuda/visitmerge/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.MergeReport) (int, error)
}

// Options holds settings shared by the writers NewWriter creates.
// Options that do not apply to a format are ignored.
type Options struct {
	// Pretty enables indented JSON output.
	Pretty bool

	// SummariesOnly limits JSON output to the summaries list.
	SummariesOnly bool
}

// NewWriter creates the Writer for the given format.
// It returns ErrUnknownFormat for any format not listed in Formats.
func NewWriter(format Format, output io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatLiteral:
		return NewLiteralWriter(output), nil
	case FormatJSON:
		var jsonOpts []JSONWriterOption
		if opts.Pretty {
			jsonOpts = append(jsonOpts, WithPrettyPrint())
		}
		if opts.SummariesOnly {
			jsonOpts = append(jsonOpts, WithSummariesOnly())
		}
		return NewJSONWriter(output, jsonOpts...), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatCSV:
		return NewCSVWriter(output), nil
	default:
		f, err := ParseFormat(string(format))
		if err != nil {
			return nil, err
		}
		// Unnormalized spelling such as "JSON".
		return NewWriter(f, output, opts)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
