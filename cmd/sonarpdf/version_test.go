package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version retrieval.
func TestGetVersion(t *testing.T) {
	if got := getVersion(); got == "" {
		t.Error("getVersion() returned empty string")
	}
}

// TestNewVersionCmd tests the version command output.
func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "sonarpdf version") {
		t.Errorf("output = %q, missing version line", out.String())
	}
	if !strings.Contains(out.String(), "commit:") {
		t.Errorf("output = %q, missing commit line", out.String())
	}
}
