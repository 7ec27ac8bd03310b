package config

import (
	"errors"
	"testing"
	"time"
)

// validConfig returns a config that passes Validate, for tests that break
// one field at a time.
func validConfig() *Config {
	cfg := NewConfig()
	cfg.ServerURL = "https://sonar.example.com"
	cfg.AuthToken = "squ_0123456789abcdef"
	cfg.ProjectKey = "my-project"
	return cfg
}

// TestNewConfig verifies the documented defaults.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default output file is output/report.pdf", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputFile != "output/report.pdf" {
			t.Errorf("expected 'output/report.pdf', got %q", cfg.OutputFile)
		}
	})

	t.Run("default timeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected 30s, got %v", cfg.Timeout)
		}
	})

	t.Run("default metric keys match the overview metrics", func(t *testing.T) {
		t.Parallel()
		want := []string{"bugs", "vulnerabilities", "code_smells", "security_hotspots"}
		if len(cfg.MetricKeys) != len(want) {
			t.Fatalf("expected %d metric keys, got %d", len(want), len(cfg.MetricKeys))
		}
		for i := range want {
			if cfg.MetricKeys[i] != want[i] {
				t.Errorf("expected metric key %d to be %q, got %q", i, want[i], cfg.MetricKeys[i])
			}
		}
	})

	t.Run("default snippet context is 5 lines", func(t *testing.T) {
		t.Parallel()
		if cfg.SnippetContext != 5 {
			t.Errorf("expected 5, got %d", cfg.SnippetContext)
		}
	})

	t.Run("required fields start empty", func(t *testing.T) {
		t.Parallel()
		if cfg.ServerURL != "" || cfg.AuthToken != "" || cfg.ProjectKey != "" {
			t.Error("expected required fields to be empty before LoadEnv")
		}
	})
}

// TestConfigValidate verifies that Validate catches each invalid field.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("missing server URL", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.ServerURL = ""
		var missing *MissingConfigurationError
		if err := cfg.Validate(); !errors.As(err, &missing) {
			t.Fatalf("expected MissingConfigurationError, got %v", err)
		} else if missing.Variable != EnvServerURL {
			t.Errorf("expected variable %s, got %s", EnvServerURL, missing.Variable)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MarkdownReport = true
		cfg.JSONReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("empty output path", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.OutputFile = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoOutputFile) {
			t.Errorf("expected ErrNoOutputFile, got %v", err)
		}
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Timeout = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("negative snippet context", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.SnippetContext = -1
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidSnippetContext) {
			t.Errorf("expected ErrInvalidSnippetContext, got %v", err)
		}
	})

	t.Run("empty metric keys", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MetricKeys = nil
		if err := cfg.Validate(); !errors.Is(err, ErrNoMetricKeys) {
			t.Errorf("expected ErrNoMetricKeys, got %v", err)
		}
	})
}
