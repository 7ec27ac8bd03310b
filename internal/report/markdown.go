package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// MarkdownWriter outputs the report as GitHub Flavored Markdown.
// This format is for sharing in pull requests and wikis; the PDF remains
// the primary stakeholder artifact.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation: type-safe tables, fenced code blocks, and GitHub alert
// blocks without hand-assembled strings.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeOverview(md, report)
	w.writeIssues(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("SonarQube Analysis Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project", "`" + report.ProjectKey + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Quality Gate", report.Overview.QualityGate.String()},
			{"Issues", strconv.Itoa(report.TotalIssues())},
		},
	})
	md.PlainText("")

	w.writeGateAlert(md, report.Overview.QualityGate)
}

// writeGateAlert writes a GitHub alert matching the quality gate verdict.
func (w *MarkdownWriter) writeGateAlert(md *markdown.Markdown, gate model.QualityGateStatus) {
	switch gate {
	case model.QualityGateFailed:
		md.Cautionf("The quality gate is failing. The issues below need attention before release.")
	case model.QualityGateWarn:
		md.Warningf("The quality gate reports warnings.")
	case model.QualityGatePassed:
		md.Note("The quality gate is passing.")
	default:
		md.Importantf("The quality gate status could not be determined.")
	}
	md.PlainText("")
}

// writeOverview writes the severity, type, and metric summary tables.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, report *model.Report) {
	md.H2("Overview")
	md.PlainText("")

	// Severities from highest to lowest: the rows readers care about first.
	severityRows := make([][]string, 0, len(model.Severities)+1)
	for i := len(model.Severities) - 1; i >= 0; i-- {
		s := model.Severities[i]
		severityRows = append(severityRows, []string{
			s.String(), strconv.Itoa(report.Overview.SeverityCounts[s]),
		})
	}
	severityRows = append(severityRows, []string{
		"**Total**", "**" + strconv.Itoa(report.Overview.TotalBySeverity()) + "**",
	})
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows:   severityRows,
	})
	md.PlainText("")

	typeRows := make([][]string, 0, len(model.IssueTypes))
	for _, typ := range model.IssueTypes {
		typeRows = append(typeRows, []string{
			typ.String(), strconv.Itoa(report.Overview.TypeCounts[typ]),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Type", "Count"},
		Rows:   typeRows,
	})
	md.PlainText("")

	metricRows := make([][]string, 0, len(report.Overview.Metrics))
	for _, key := range report.Overview.Metrics.Keys() {
		metricRows = append(metricRows, []string{
			metricLabel(key), report.Overview.Metrics.Value(key),
		})
	}
	if len(metricRows) > 0 {
		md.Table(markdown.TableSet{
			Header: []string{"Metric", "Value"},
			Rows:   metricRows,
		})
		md.PlainText("")
	}
}

// writeIssues writes one section per issue detail block.
func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, report *model.Report) {
	if report.TotalIssues() == 0 {
		return
	}

	md.H2("Issue Details")
	md.PlainText("")

	for i, detail := range report.Issues {
		issue := detail.Issue
		md.H3(fmt.Sprintf("%d. [%s/%s] %s", i+1, issue.Severity, issue.Type, issue.Message))
		md.PlainText("")

		location := "`" + issue.FilePath() + "`"
		if issue.HasLine() {
			location += fmt.Sprintf(" line %d", issue.Line)
		}
		md.PlainTextf("%s, rule `%s` (%s)", location, issue.Rule, detail.RuleName)
		md.PlainText("")

		if detail.WhyText != "" {
			md.H4("Why is this an issue?")
			md.PlainText(detail.WhyText)
			md.PlainText("")
		}
		if detail.FixText != "" {
			md.H4("How can I fix it?")
			md.PlainText(detail.FixText)
			md.PlainText("")
		}

		for _, example := range detail.Examples {
			md.PlainText("**" + example.Label() + ":**")
			md.CodeBlocks(markdown.SyntaxHighlightNone, example.Code)
			md.PlainText("")
		}

		if detail.Excerpt != nil {
			md.H4("Source")
			md.CodeBlocks(markdown.SyntaxHighlightNone, formatExcerpt(detail.Excerpt))
			md.PlainText("")
		}

		md.HorizontalRule()
		md.PlainText("")
	}
}

// formatExcerpt renders a source excerpt with right-aligned line numbers
// and a marker on the issue line.
func formatExcerpt(excerpt *model.SourceExcerpt) string {
	var b strings.Builder
	for i, line := range excerpt.Lines {
		lineNo := excerpt.StartLine + i
		marker := " "
		if lineNo == excerpt.IssueLine {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s%4d | %s", marker, lineNo, line)
		if i < len(excerpt.Lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
