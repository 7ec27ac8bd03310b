package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewMarkdownWriter(&buf).Write(fixtureReport())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n == 0 {
		t.Fatal("Write() n = 0, want rendered output")
	}
	out := buf.String()

	wantFragments := []string{
		"# SonarQube Analysis Report",
		"demo-project",
		"## Overview",
		"BLOCKER",
		"## Issue Details",
		"1. [BLOCKER/BUG] Fix this nil dereference.",
		"`internal/server/server.go` line 42",
		"#### Why is this an issue?",
		"Dereferencing nil panics at runtime.",
		"#### How can I fix it?",
		"**Non-compliant:**",
		"**Compliant:**",
		"```",
		">  42 | \tv := p.Field",
	}
	for _, want := range wantFragments {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// The second issue has no line, so no location suffix is rendered.
	if strings.Contains(out, "`internal/handler.go` line") {
		t.Error("file-level issue rendered with a line number")
	}
}

func TestMarkdownWriterGateAlerts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gate model.QualityGateStatus
		want string
	}{
		{model.QualityGatePassed, "[!NOTE]"},
		{model.QualityGateFailed, "[!CAUTION]"},
		{model.QualityGateWarn, "[!WARNING]"},
		{model.QualityGateUnknown, "[!IMPORTANT]"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.gate.String(), func(t *testing.T) {
			t.Parallel()

			report := fixtureReport()
			report.Overview.QualityGate = tt.gate

			var buf bytes.Buffer
			if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output for gate %s missing %q", tt.gate, tt.want)
			}
		})
	}
}

func TestFormatExcerpt(t *testing.T) {
	t.Parallel()

	excerpt := &model.SourceExcerpt{
		StartLine: 41,
		Lines:     []string{"func handle() {", "\tv := p.Field", "}"},
		IssueLine: 42,
	}
	want := "   41 | func handle() {\n" +
		">  42 | \tv := p.Field\n" +
		"   43 | }"
	if got := formatExcerpt(excerpt); got != want {
		t.Errorf("formatExcerpt() = %q, want %q", got, want)
	}
}
