package table

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the character encoding assumed for input files.
const DefaultEncoding = "utf-8"

// readOptions holds ReadFile settings.
type readOptions struct {
	encoding string
}

// ReadOption configures ReadFile.
type ReadOption func(*readOptions)

// WithEncoding sets the character encoding of the file.
// Any WHATWG label is accepted ("utf-8", "windows-1250", "iso-8859-2", ...).
// An empty label keeps the default.
func WithEncoding(label string) ReadOption {
	return func(o *readOptions) {
		if label != "" {
			o.encoding = label
		}
	}
}

// LookupEncoding resolves an encoding label.
// Labels are matched case-insensitively with surrounding space ignored.
func LookupEncoding(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
	}
	return enc, nil
}

// ReadFile opens path, decodes it fully into memory and returns a Source
// named after the path. The file is closed before ReadFile returns.
//
// A byte order mark, if present, takes precedence over the configured
// encoding and is stripped, so it never ends up in the first header name.
func ReadFile(path string, opts ...ReadOption) (*CSVSource, error) {
	o := readOptions{encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(&o)
	}

	enc, err := LookupEncoding(o.encoding)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	decoder := unicode.BOMOverride(enc.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	return NewSource(bytes.NewReader(data), WithName(path))
}
