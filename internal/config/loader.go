package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultOptionsFile is the default options file name.
const DefaultOptionsFile = ".sonarpdf.yaml"

// ErrOptionsNotFound is returned when the options file does not exist.
var ErrOptionsNotFound = errors.New("options file not found")

// File represents the structure of the .sonarpdf.yaml options file.
// Every field is optional; zero values leave the corresponding Config field
// untouched. The three required environment values can never be set here -
// credentials do not belong in files that end up in repositories.
type File struct {
	// Output is the report output path.
	Output string `yaml:"output,omitempty"`

	// Format selects the report format: "pdf" (default), "markdown", or
	// "json".
	Format string `yaml:"format,omitempty"`

	// MetricKeys overrides the metrics requested for the overview.
	MetricKeys []string `yaml:"metricKeys,omitempty"`

	// Timeout overrides the HTTP client timeout, in time.ParseDuration
	// syntax (e.g. "45s"). Kept as a string because yaml.v3 has no native
	// duration support; Apply parses it.
	Timeout string `yaml:"timeout,omitempty"`

	// SnippetContext overrides the number of context lines around an
	// issue's line. Use 0 to keep the default; excerpts cannot be
	// disabled from the file.
	SnippetContext int `yaml:"snippetContext,omitempty"`
}

// LoadOptionsFile loads options from a YAML file.
// If the file does not exist, it returns ErrOptionsNotFound; callers decide
// whether that is fatal based on whether the path was explicitly specified.
func LoadOptionsFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided options path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrOptionsNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindOptionsFile searches for the options file in the following order:
//  1. If optionsPath is specified, use it directly
//  2. Look for .sonarpdf.yaml in the current directory
//  3. Look for .sonarpdf.yaml in the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindOptionsFile(optionsPath string) string {
	if optionsPath != "" {
		if _, err := os.Stat(optionsPath); err == nil {
			return optionsPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		candidate := filepath.Join(cwd, DefaultOptionsFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(XDGConfigDir(), DefaultOptionsFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}

// Apply copies the file's non-zero options onto the config.
// Flag handling runs after Apply, so flags still win over the file.
// It returns an error only for values that cannot be parsed; validity
// checks (positive timeout and so on) stay in Config.Validate.
func (f *File) Apply(c *Config) error {
	if f.Output != "" {
		c.OutputFile = f.Output
	}
	switch f.Format {
	case "", "pdf":
		// PDF is the default; nothing to switch.
	case "markdown":
		c.MarkdownReport = true
	case "json":
		c.JSONReport = true
	default:
		return fmt.Errorf("unknown report format %q: expected pdf, markdown, or json", f.Format)
	}
	if len(f.MetricKeys) > 0 {
		c.MetricKeys = append([]string(nil), f.MetricKeys...)
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", f.Timeout, err)
		}
		c.Timeout = d
	}
	if f.SnippetContext != 0 {
		c.SnippetContext = f.SnippetContext
	}
	return nil
}
