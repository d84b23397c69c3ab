package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/shushuda/visitmerge/internal/model"
)

// MarkdownWriter outputs reports in Markdown format, suitable for
// documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.MergeReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeStats(md, report)
	w.writeSummaries(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.MergeReport) {
	md.H1("Visit Merge Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + report.RunID + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Persons File", escapeCell(valueOrDash(report.PersonsSource))},
			{"Visits File", escapeCell(valueOrDash(report.VisitsSource))},
		},
	})
	md.PlainText("")
}

// writeStats writes the row counts and, when any person has visits,
// a pie chart of visits per person.
func (w *MarkdownWriter) writeStats(md *markdown.Markdown, report *model.MergeReport) {
	md.H2("Statistics")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Persons", strconv.Itoa(report.Stats.Persons)},
			{"Visits", strconv.Itoa(report.Stats.Visits)},
			{"Matched Visits", strconv.Itoa(report.Stats.MatchedVisits)},
			{"Unmatched Visits", strconv.Itoa(report.Stats.UnmatchedVisits)},
		},
	})
	md.PlainText("")

	if report.Stats.UnmatchedVisits > 0 {
		md.Warningf("%d visit(s) reference an unknown person and were ignored.", report.Stats.UnmatchedVisits)
		md.PlainText("")
	}

	if report.HasVisits() {
		w.writePieChart(md, report)
	}
}

// writePieChart writes a mermaid pie chart of visits per person.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.MergeReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Visits per Person"),
		piechart.WithShowData(true),
	)

	for _, s := range report.PersonsWithVisits() {
		chart.LabelAndIntValue(personLabel(s), uint64(s.Visits)) //nolint:gosec // visits is never negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeSummaries writes one table row per person in report order.
func (w *MarkdownWriter) writeSummaries(md *markdown.Markdown, report *model.MergeReport) {
	md.H2("Persons")
	md.PlainText("")

	if len(report.Summaries) == 0 {
		md.PlainText("No persons in input.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Summaries))
	for i, s := range report.Summaries {
		rows[i] = []string{escapeCell(s.ID), escapeCell(s.Name), escapeCell(s.Surname), strconv.Itoa(s.Visits)}
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "Surname", "Visits"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by visitmerge*")
}

// personLabel builds a quoted-string-safe chart label from a summary.
// Persons without a name fall back to their id.
func personLabel(s model.PersonSummary) string {
	label := strings.TrimSpace(s.Name + " " + s.Surname)
	if label == "" {
		label = "id " + s.ID
	}
	return labelReplacer.Replace(label)
}

// labelReplacer keeps a mermaid label on one line inside its double quotes.
var labelReplacer = strings.NewReplacer(`"`, "#quot;", "\r\n", " ", "\n", " ", "\r", " ")

// cellReplacer keeps a value inside a single Markdown table cell.
var cellReplacer = strings.NewReplacer(`|`, `\|`, "\r\n", "<br>", "\n", "<br>", "\r", "<br>")

// escapeCell escapes a user value for a Markdown table cell.
func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
