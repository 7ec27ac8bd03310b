package report

import (
	"encoding/json"
	"io"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// JSONWriter outputs the report as indented JSON.
// This is the machine-readable escape hatch: everything the generator
// assembled, dumped verbatim for downstream tooling.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as indented JSON with a trailing newline.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
