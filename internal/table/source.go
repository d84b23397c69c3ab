package table

import (
	"encoding/csv"
	"errors"
	"io"
)

// Row is one data row keyed by header field name.
// A cell missing from a short row is absent from the map, so callers can
// tell "missing" from "empty" with the two-value lookup.
type Row map[string]string

// Source is a header plus a single-pass sequence of rows.
type Source interface {
	// Fields returns the header field names in order.
	// It returns nil when the input had no header line at all.
	Fields() []string

	// Each calls fn for every data row in input order. Iteration stops at
	// the first error returned by fn or by the underlying reader.
	// A Source can be iterated once; later calls return ErrSourceConsumed.
	Each(fn func(Row) error) error
}

// CSVSource is a Source backed by an encoding/csv reader.
type CSVSource struct {
	name     string
	reader   *csv.Reader
	fields   []string
	consumed bool
}

// SourceOption configures a CSVSource.
type SourceOption func(*CSVSource)

// WithName attaches a human-readable name (typically the file path) to the source.
func WithName(name string) SourceOption {
	return func(s *CSVSource) {
		s.name = name
	}
}

// NewSource reads the header line from r and returns a Source for the rest.
// Blank lines are skipped, rows may be shorter or longer than the header,
// and stray quotes inside unquoted fields are accepted.
func NewSource(r io.Reader, opts ...SourceOption) (*CSVSource, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	s := &CSVSource{reader: cr}
	for _, opt := range opts {
		opt(s)
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return s, nil
	}
	if err != nil {
		return nil, wrapParseError(err)
	}
	s.fields = header

	return s, nil
}

// Name returns the name given with WithName, or an empty string.
func (s *CSVSource) Name() string {
	return s.name
}

// Fields returns a copy of the header field names.
func (s *CSVSource) Fields() []string {
	if s.fields == nil {
		return nil
	}
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Each implements Source.
func (s *CSVSource) Each(fn func(Row) error) error {
	if s.consumed {
		return ErrSourceConsumed
	}
	s.consumed = true

	if s.fields == nil {
		return nil
	}

	for {
		record, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return wrapParseError(err)
		}

		row := make(Row, len(s.fields))
		for i, field := range s.fields {
			if i < len(record) {
				row[field] = record[i]
			}
		}

		if err := fn(row); err != nil {
			return err
		}
	}
}

// Collect materializes every row of src in order.
// It consumes src; the returned slice can be traversed any number of times.
func Collect(src Source) ([]Row, error) {
	var rows []Row
	err := src.Each(func(row Row) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// wrapParseError converts csv reader errors into ParseError.
func wrapParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}
