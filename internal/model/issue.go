package model

import "strings"

// Issue is a single finding reported by SonarQube for the configured project.
// Field names and JSON tags mirror the api/issues/search response; the data
// is read-only within the process and rendered verbatim into the report.
type Issue struct {
	// Key uniquely identifies the issue on the server.
	Key string `json:"key"`

	// Rule is the key of the rule that raised the issue (e.g. "go:S1192").
	// It is used to fetch the rule's explanation via api/rules/show.
	Rule string `json:"rule"`

	// Severity is the issue's importance, INFO through BLOCKER.
	Severity Severity `json:"severity"`

	// Type categorizes the issue: BUG, VULNERABILITY, or CODE_SMELL.
	Type IssueType `json:"type"`

	// Component is the server-side component key, typically
	// "<projectKey>:<path/to/file>". Use FilePath to get the bare path.
	Component string `json:"component"`

	// Project is the project key the issue belongs to.
	Project string `json:"project"`

	// Line is the 1-based line the issue was raised on. Zero when the issue
	// is file-level or project-level and has no line.
	Line int `json:"line"`

	// Message is the human-readable description of the finding.
	Message string `json:"message"`

	// TextRange is the exact source range of the finding, when available.
	TextRange TextRange `json:"textRange"`
}

// TextRange is the source range of a finding within its file.
type TextRange struct {
	StartLine   int `json:"startLine"`
	EndLine     int `json:"endLine"`
	StartOffset int `json:"startOffset"`
	EndOffset   int `json:"endOffset"`
}

// FilePath returns the file path portion of the component key.
// SonarQube component keys are "<projectKey>:<path>"; for project-level
// issues there is no path and the component key is returned as is.
func (i Issue) FilePath() string {
	if _, path, ok := strings.Cut(i.Component, ":"); ok {
		return path
	}
	return i.Component
}

// HasLine reports whether the issue points at a concrete source line.
// File-level and project-level issues do not, and render without a
// location or source excerpt.
func (i Issue) HasLine() bool {
	return i.Line > 0
}
