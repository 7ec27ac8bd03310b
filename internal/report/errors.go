package report

import "fmt"

// GenerationError is returned when any upstream client call fails during
// report generation. It wraps the underlying error (APIError, NetworkError)
// so callers can still inspect the cause with errors.Is/As.
type GenerationError struct {
	// Err is the failure that aborted generation.
	Err error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("report generation failed: %v", e.Err)
}

// Unwrap returns the wrapped cause.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// PDFWriteError is returned when the rendered PDF cannot be written to the
// filesystem (permission denied, disk full, unreachable directory).
type PDFWriteError struct {
	// Path is the output path the write was aimed at.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *PDFWriteError) Error() string {
	return fmt.Sprintf("failed to write PDF to %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *PDFWriteError) Unwrap() error {
	return e.Err
}
