package config

import (
	"errors"
	"fmt"
)

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors for the fixed
// conditions so callers can use errors.Is, and a dedicated error type for
// the missing-variable case because it must name which variable is absent.
var (
	// ErrConflictingReportFormats is returned when both --markdown and
	// --json are requested. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --markdown and --json cannot be used together")

	// ErrNoOutputFile is returned when the output path is empty.
	ErrNoOutputFile = errors.New("no output file: provide a path via --output or the options file")

	// ErrInvalidTimeout is returned when the HTTP timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidSnippetContext is returned when the snippet context line
	// count is negative. Use 0 to disable source excerpts.
	ErrInvalidSnippetContext = errors.New("invalid snippet context: must be non-negative")

	// ErrNoMetricKeys is returned when the metric key list is empty.
	// The overview section cannot be built without at least one metric.
	ErrNoMetricKeys = errors.New("no metric keys configured")
)

// MissingConfigurationError is returned when a required environment variable
// is unset or empty. It names the variable so the operator knows exactly
// what to export.
type MissingConfigurationError struct {
	// Variable is the name of the absent environment variable.
	Variable string
}

// Error implements the error interface.
func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: environment variable %s is not set", e.Variable)
}

// Is reports whether target is a MissingConfigurationError for the same
// variable, or any MissingConfigurationError when target's variable is empty.
// This lets tests assert the error class without constructing exact values.
func (e *MissingConfigurationError) Is(target error) bool {
	var other *MissingConfigurationError
	if !errors.As(target, &other) {
		return false
	}
	return other.Variable == "" || other.Variable == e.Variable
}
