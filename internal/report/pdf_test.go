package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// oversizedReport builds a report whose issue blocks are each taller than a
// page: long explanation text plus a large code example.
func oversizedReport(issueCount int) *model.Report {
	longWhy := strings.TrimSpace(strings.Repeat(
		"This sentence pads the explanation until the block no longer fits on a single page.\n", 90))
	longCode := strings.TrimSpace(strings.Repeat("if err != nil {\n\treturn err\n}\n", 40))

	issues := make([]model.Issue, 0, issueCount)
	details := make([]model.IssueDetail, 0, issueCount)
	for i := 0; i < issueCount; i++ {
		issue := model.Issue{
			Key:       fmt.Sprintf("ISSUE-%d", i+1),
			Rule:      "go:S1000",
			Severity:  model.SeverityCritical,
			Type:      model.TypeBug,
			Component: fmt.Sprintf("demo-project:pkg/file%d.go", i+1),
			Project:   "demo-project",
			Line:      10,
			Message:   fmt.Sprintf("Oversized finding number %d.", i+1),
		}
		issues = append(issues, issue)
		details = append(details, model.IssueDetail{
			Issue:    issue,
			RuleName: "A rule with a very long description",
			WhyText:  longWhy,
			FixText:  longWhy,
			Examples: []model.CodeExample{{Compliant: false, Code: longCode}},
		})
	}

	return &model.Report{
		ProjectKey:  "demo-project",
		GeneratedAt: time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
		Overview:    model.NewOverview(model.QualityGateFailed, model.MetricSummary{"bugs": "4"}, issues),
		Issues:      details,
	}
}

func TestRenderPDF(t *testing.T) {
	t.Parallel()

	t.Run("renders without error", func(t *testing.T) {
		t.Parallel()

		doc := renderPDF(fixtureReport())
		if err := doc.Error(); err != nil {
			t.Fatalf("renderPDF() error = %v", err)
		}
		if doc.PageCount() < 1 {
			t.Errorf("PageCount() = %d, want at least 1", doc.PageCount())
		}
	})

	t.Run("oversized blocks each start a new page", func(t *testing.T) {
		t.Parallel()

		const issueCount = 4
		doc := renderPDF(oversizedReport(issueCount))
		if err := doc.Error(); err != nil {
			t.Fatalf("renderPDF() error = %v", err)
		}
		// Each block is taller than a page, so the document needs at
		// least one page per issue on top of the overview page.
		if got := doc.PageCount(); got < issueCount+1 {
			t.Errorf("PageCount() = %d, want at least %d", got, issueCount+1)
		}
	})

	t.Run("output is byte-identical across renders", func(t *testing.T) {
		t.Parallel()

		report := fixtureReport()

		var first, second bytes.Buffer
		if _, err := NewPDFWriter(&first).Write(report); err != nil {
			t.Fatalf("first Write() error = %v", err)
		}
		if _, err := NewPDFWriter(&second).Write(report); err != nil {
			t.Fatalf("second Write() error = %v", err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Error("two renders of the same report produced different bytes")
		}
	})

	t.Run("reports written bytes and a PDF header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewPDFWriter(&buf).Write(fixtureReport())
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if n != buf.Len() {
			t.Errorf("Write() n = %d, want %d", n, buf.Len())
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Error("output does not start with a PDF header")
		}
	})
}

func TestWritePDFFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories and writes the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "output", "report.pdf")
		if err := WritePDFFile(fixtureReport(), path); err != nil {
			t.Fatalf("WritePDFFile() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Error("file does not start with a PDF header")
		}
	})

	t.Run("wraps filesystem failures in PDFWriteError", func(t *testing.T) {
		t.Parallel()

		// A regular file where a directory is needed makes MkdirAll fail.
		blocker := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		err := WritePDFFile(fixtureReport(), filepath.Join(blocker, "out", "report.pdf"))
		if err == nil {
			t.Fatal("WritePDFFile() error = nil, want PDFWriteError")
		}
		var writeErr *PDFWriteError
		if !errors.As(err, &writeErr) {
			t.Fatalf("error %v is not a PDFWriteError", err)
		}
		if writeErr.Path == "" {
			t.Error("PDFWriteError.Path is empty")
		}
	})
}
