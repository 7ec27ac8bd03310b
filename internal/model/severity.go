package model

// Severity is the ordinal classification of an issue's importance as
// reported by SonarQube, from INFO (lowest) to BLOCKER (highest).
//
// Design decision: We keep the server's string values rather than mapping to
// iota constants because the values arrive verbatim in JSON responses and are
// rendered verbatim in the report. Rank() provides the ordering when sorting
// or choosing badge colors.
type Severity string

// Severities in ascending order of importance.
const (
	SeverityInfo     Severity = "INFO"
	SeverityMinor    Severity = "MINOR"
	SeverityMajor    Severity = "MAJOR"
	SeverityCritical Severity = "CRITICAL"
	SeverityBlocker  Severity = "BLOCKER"
)

// Severities lists all known severities from lowest to highest.
// Writers iterate this slice so that summary tables have a stable row order.
var Severities = []Severity{
	SeverityInfo,
	SeverityMinor,
	SeverityMajor,
	SeverityCritical,
	SeverityBlocker,
}

// Rank returns the position of the severity in the INFO..BLOCKER ordering.
// Unknown severities rank below INFO so they sort first and stand out.
func (s Severity) Rank() int {
	for i, known := range Severities {
		if s == known {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether the severity is one of the values SonarQube emits.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// String returns the severity as the server spells it.
func (s Severity) String() string {
	return string(s)
}

// IssueType categorizes an issue as a bug, a vulnerability, or a code smell.
type IssueType string

// Issue types as reported by SonarQube.
const (
	TypeBug           IssueType = "BUG"
	TypeVulnerability IssueType = "VULNERABILITY"
	TypeCodeSmell     IssueType = "CODE_SMELL"
)

// IssueTypes lists all known issue types in the order summary tables use.
var IssueTypes = []IssueType{
	TypeBug,
	TypeVulnerability,
	TypeCodeSmell,
}

// Valid reports whether the type is one of the values SonarQube emits.
func (t IssueType) Valid() bool {
	for _, known := range IssueTypes {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the type as the server spells it.
func (t IssueType) String() string {
	return string(t)
}
