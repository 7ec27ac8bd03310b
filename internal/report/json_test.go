package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the report", func(t *testing.T) {
		t.Parallel()

		report := fixtureReport()
		var buf bytes.Buffer
		n, err := NewJSONWriter(&buf).Write(report)
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if n != buf.Len() {
			t.Errorf("Write() n = %d, want %d", n, buf.Len())
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("output does not end with a newline")
		}

		var decoded model.Report
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if decoded.ProjectKey != report.ProjectKey {
			t.Errorf("ProjectKey = %q, want %q", decoded.ProjectKey, report.ProjectKey)
		}
		if decoded.TotalIssues() != report.TotalIssues() {
			t.Errorf("TotalIssues() = %d, want %d", decoded.TotalIssues(), report.TotalIssues())
		}
		if decoded.Overview.QualityGate != model.QualityGateFailed {
			t.Errorf("QualityGate = %v, want FAILED", decoded.Overview.QualityGate)
		}
		if decoded.Issues[0].Excerpt == nil {
			t.Error("Issues[0].Excerpt lost in round trip")
		}
	})

	t.Run("omits empty detail fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(fixtureReport()); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		// The second issue has no fix text, examples, or excerpt.
		if strings.Contains(buf.String(), `"fixText": ""`) {
			t.Error("empty fixText serialized, want omitted")
		}
	})
}
