package model

import "time"

// Report is the assembled result of one run: the overview derived from the
// fetched data, followed by one detail block per issue. It is built once by
// the report generator, consumed once by a writer, and then discarded.
//
// Invariant: Overview.SeverityCounts and Overview.TypeCounts are computed
// from the same Issues slice that the detail blocks render, never from a
// separate server-side aggregate. NewOverview is the only way counts are
// produced, so the overview totals always equal the number of detail blocks.
type Report struct {
	// ProjectKey is the SonarQube project the report describes.
	ProjectKey string `json:"projectKey"`

	// GeneratedAt is when the report was generated. Injected by the
	// generator so that tests and reproducible builds can pin it.
	GeneratedAt time.Time `json:"generatedAt"`

	// Overview holds the summary section data.
	Overview Overview `json:"overview"`

	// Issues holds one detail block per issue, in server order.
	Issues []IssueDetail `json:"issues"`
}

// TotalIssues returns the number of issue detail blocks in the report.
func (r *Report) TotalIssues() int {
	return len(r.Issues)
}

// Overview is the summary section of the report: the quality gate verdict,
// issue counts grouped by severity and by type, and the project metrics.
type Overview struct {
	// QualityGate is the project's pass/fail verdict.
	QualityGate QualityGateStatus `json:"qualityGate"`

	// SeverityCounts maps each severity to the number of issues with it.
	SeverityCounts map[Severity]int `json:"severityCounts"`

	// TypeCounts maps each issue type to the number of issues with it.
	TypeCounts map[IssueType]int `json:"typeCounts"`

	// Metrics holds the requested project metrics (bugs, code_smells, ...).
	Metrics MetricSummary `json:"metrics"`
}

// NewOverview builds the overview counts from the issue slice that will also
// populate the detail sections. Counting here, from the single source slice,
// is what keeps the overview totals and the detail block count in agreement.
func NewOverview(gate QualityGateStatus, metrics MetricSummary, issues []Issue) Overview {
	bySeverity := make(map[Severity]int)
	byType := make(map[IssueType]int)
	for _, issue := range issues {
		bySeverity[issue.Severity]++
		byType[issue.Type]++
	}
	return Overview{
		QualityGate:    gate,
		SeverityCounts: bySeverity,
		TypeCounts:     byType,
		Metrics:        metrics,
	}
}

// TotalBySeverity returns the sum of all severity counts.
func (o Overview) TotalBySeverity() int {
	var total int
	for _, n := range o.SeverityCounts {
		total += n
	}
	return total
}

// IssueDetail is one detail block of the report: the issue itself plus the
// explanation material gathered for it.
type IssueDetail struct {
	// Issue is the finding as the server reported it.
	Issue Issue `json:"issue"`

	// RuleName is the display name of the rule that raised the issue.
	RuleName string `json:"ruleName,omitempty"`

	// WhyText explains why the rule considers this a problem, converted
	// from the rule description's HTML to plain text.
	WhyText string `json:"whyText,omitempty"`

	// FixText explains how to fix the problem, converted from HTML.
	FixText string `json:"fixText,omitempty"`

	// Examples holds the rule's code examples in document order, labeled
	// non-compliant or compliant. Empty when the rule has none.
	Examples []CodeExample `json:"examples,omitempty"`

	// Excerpt is the source code surrounding the issue line, when the
	// server could provide it. Nil when the file is not retrievable
	// (generated code, deleted file) - the block renders without it.
	Excerpt *SourceExcerpt `json:"excerpt,omitempty"`
}

// CodeExample is a code snippet from a rule description, shown under a
// "Non-compliant" or "Compliant" heading in the report.
type CodeExample struct {
	// Compliant is true for the corrected example, false for the one
	// demonstrating the problem.
	Compliant bool `json:"compliant"`

	// Code is the snippet text with markup already stripped.
	Code string `json:"code"`
}

// Label returns the heading used when rendering the example.
func (e CodeExample) Label() string {
	if e.Compliant {
		return "Compliant"
	}
	return "Non-compliant"
}

// SourceExcerpt is a run of source lines surrounding an issue's line.
type SourceExcerpt struct {
	// StartLine is the 1-based line number of Lines[0].
	StartLine int `json:"startLine"`

	// Lines are the raw source lines with server markup stripped.
	Lines []string `json:"lines"`

	// IssueLine is the line the issue points at, marked when rendering.
	IssueLine int `json:"issueLine"`
}
