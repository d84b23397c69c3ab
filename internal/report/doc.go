// Package report renders merge results.
//
// Four output formats are provided:
//   - LiteralWriter: the summaries as one structured literal, one line
//   - JSONWriter: the full report (or only the summaries) as JSON
//   - MarkdownWriter: a Markdown document with tables and a mermaid chart
//   - CSVWriter: the summaries as CSV with an id,name,surname,visits header
//
// Report data lives in the model package. Writers implement the Writer
// interface and are usually created through NewWriter from a Format.
package report
