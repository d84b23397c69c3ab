package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shushuda/visitmerge/internal/model"
)

// CSVWriter outputs the summaries as CSV with an id,name,surname,visits
// header, one row per summary in report order.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// CSVHeader returns the header row written by CSVWriter.
func CSVHeader() []string {
	return append(model.PersonFields(), "visits")
}

// Write outputs the summaries in CSV format.
func (w *CSVWriter) Write(report *model.MergeReport) (int, error) {
	cw := &countingWriter{w: w.output}
	out := csv.NewWriter(cw)

	if err := out.Write(CSVHeader()); err != nil {
		return cw.n, err
	}
	for _, s := range report.Summaries {
		if err := out.Write([]string{s.ID, s.Name, s.Surname, strconv.Itoa(s.Visits)}); err != nil {
			return cw.n, err
		}
	}
	out.Flush()
	return cw.n, out.Error()
}

// countingWriter tracks how many bytes pass through to w.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
