package config

import (
	"errors"
	"testing"
)

// TestLoadEnv verifies the round-trip property: the loaded fields exactly
// equal the environment values.
//
// Note: these tests use t.Setenv and therefore cannot run in parallel.
func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvServerURL, "https://sonar.example.com")
	t.Setenv(EnvAuthToken, "squ_cafebabe")
	t.Setenv(EnvProjectKey, "acme:billing")

	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ServerURL != "https://sonar.example.com" {
		t.Errorf("ServerURL round-trip failed, got %q", cfg.ServerURL)
	}
	if cfg.AuthToken != "squ_cafebabe" {
		t.Errorf("AuthToken round-trip failed, got %q", cfg.AuthToken)
	}
	if cfg.ProjectKey != "acme:billing" {
		t.Errorf("ProjectKey round-trip failed, got %q", cfg.ProjectKey)
	}
}

// TestLoadEnvMissing verifies that each absent variable is reported by name
// and that nothing is copied onto the config on failure.
func TestLoadEnvMissing(t *testing.T) {
	tests := []struct {
		name   string
		unset  string
		others map[string]string
	}{
		{
			name:  "missing server URL",
			unset: EnvServerURL,
			others: map[string]string{
				EnvAuthToken:  "squ_cafebabe",
				EnvProjectKey: "acme:billing",
			},
		},
		{
			name:  "missing auth token",
			unset: EnvAuthToken,
			others: map[string]string{
				EnvServerURL:  "https://sonar.example.com",
				EnvProjectKey: "acme:billing",
			},
		},
		{
			name:  "missing project key",
			unset: EnvProjectKey,
			others: map[string]string{
				EnvServerURL: "https://sonar.example.com",
				EnvAuthToken: "squ_cafebabe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Empty counts as unset: LoadEnv treats "" the same as absent.
			t.Setenv(tt.unset, "")
			for k, v := range tt.others {
				t.Setenv(k, v)
			}

			cfg := NewConfig()
			err := cfg.LoadEnv()

			var missing *MissingConfigurationError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingConfigurationError, got %v", err)
			}
			if missing.Variable != tt.unset {
				t.Errorf("expected error to name %s, got %s", tt.unset, missing.Variable)
			}
			if cfg.ServerURL != "" || cfg.AuthToken != "" || cfg.ProjectKey != "" {
				t.Error("expected config fields to stay empty on failure")
			}
		})
	}
}
