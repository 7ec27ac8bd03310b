package model

// QualityGateStatus is the pass/fail verdict SonarQube computed for the
// project from its threshold checks.
type QualityGateStatus string

// Quality gate verdicts.
const (
	// QualityGatePassed means all conditions were met. SonarQube reports
	// this as "OK".
	QualityGatePassed QualityGateStatus = "PASSED"

	// QualityGateFailed means at least one condition was violated.
	// SonarQube reports this as "ERROR".
	QualityGateFailed QualityGateStatus = "FAILED"

	// QualityGateWarn means a warning threshold was crossed. Emitted by
	// older SonarQube versions; kept for compatibility with them.
	QualityGateWarn QualityGateStatus = "WARN"

	// QualityGateUnknown is used when the server returned a status this
	// tool does not recognize (e.g. "NONE" for never-analyzed projects).
	QualityGateUnknown QualityGateStatus = "UNKNOWN"
)

// ParseQualityGateStatus maps the server's status string to a verdict.
func ParseQualityGateStatus(s string) QualityGateStatus {
	switch s {
	case "OK", "PASSED":
		return QualityGatePassed
	case "ERROR", "FAILED":
		return QualityGateFailed
	case "WARN":
		return QualityGateWarn
	default:
		return QualityGateUnknown
	}
}

// String returns the verdict as rendered in reports.
func (s QualityGateStatus) String() string {
	return string(s)
}

// Passed reports whether the gate verdict is PASSED.
func (s QualityGateStatus) Passed() bool {
	return s == QualityGatePassed
}
