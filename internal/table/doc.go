// Package table turns CSV text into header-keyed rows.
//
// A Source exposes the header field names and lets callers iterate the data
// rows exactly once. ReadFile is the file-backed constructor: it opens a
// path, decodes it fully into memory (honoring a byte order mark and an
// optional legacy character encoding), releases the file handle and hands
// back a Source.
//
// Failures are typed so callers can tell them apart:
//   - FileAccessError: the path could not be opened or read
//   - ParseError: the CSV text is malformed
//   - ErrUnsupportedEncoding: the requested encoding label is unknown
//   - ErrSourceConsumed: a Source was iterated a second time
package table
