// Package report assembles and renders the analysis report.
//
// The Generator orchestrates the SonarQube client calls (quality gate,
// measures, issues, rule details, source excerpts) into a model.Report.
// Generation is all-or-nothing: any upstream failure aborts with a
// GenerationError and no report object is produced. The one exception is
// the per-issue source excerpt, which degrades to an excerpt-less block
// when the file is not retrievable.
//
// Writers render a finished report: PDFWriter (the primary output),
// MarkdownWriter, and JSONWriter all implement the Writer interface, and
// MultiWriter fans a report out to several of them.
package report
