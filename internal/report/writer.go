package report

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// Writer defines the interface for report output.
// Implementations render an assembled report in a specific format.
//
// Design decision: We use an interface so the CLI can select PDF, Markdown,
// or JSON output (and tests can render to buffers) with the same call site.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// MultiWriter writes a report to multiple Writers in order.
// Useful for emitting both a terminal summary and a file in one run.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the report with every configured Writer.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// titleCaser renders metric keys as table labels ("code_smells" becomes
// "Code Smells"). English casing is fine: SonarQube metric keys are English.
var titleCaser = cases.Title(language.English)

// metricLabel converts a metric key into a human-readable table label.
func metricLabel(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}
