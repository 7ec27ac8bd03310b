package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Environment variable names. All three are required and have no defaults;
// a missing or empty one fails the run before any network call is made.
const (
	// EnvServerURL names the variable holding the SonarQube base URL.
	EnvServerURL = "SONAR_QUBE_URL"

	// EnvAuthToken names the variable holding the bearer token.
	EnvAuthToken = "SONAR_QUBE_AUTH_TOKEN"

	// EnvProjectKey names the variable holding the project key to report on.
	EnvProjectKey = "SONAR_QUBE_PROJECT_KEY"
)

// Default configuration values.
const (
	// DefaultOutputFile is where the PDF is written when --output is not
	// given. Matches the conventional "output/report.pdf" location; the
	// directory is created on demand.
	DefaultOutputFile = "output/report.pdf"

	// DefaultTimeout is the HTTP client timeout for each API call.
	// 30 seconds is generous for a LAN-hosted SonarQube while still
	// surfacing an unreachable server within one coffee sip. There is no
	// retry logic anywhere, so a timeout aborts the run.
	DefaultTimeout = 30 * time.Second

	// DefaultSnippetContext is the number of source lines fetched on each
	// side of an issue's line for the excerpt block.
	DefaultSnippetContext = 5

	// AppName is the application name used for XDG directory paths.
	AppName = "sonarpdf"
)

// DefaultMetricKeys are the project metrics requested from
// api/measures/component and rendered in the overview table.
var DefaultMetricKeys = []string{
	"bugs",
	"vulnerabilities",
	"code_smells",
	"security_hotspots",
}

// Config holds all configuration for a single report run. It is populated
// once at startup (environment, optional options file, CLI flags) and passed
// by value through the application; nothing mutates it after Validate.
type Config struct {
	// ServerURL is the SonarQube base URL (e.g. "https://sonar.example.com").
	// Required, from SONAR_QUBE_URL.
	ServerURL string

	// AuthToken is the bearer token for API calls.
	// Required, from SONAR_QUBE_AUTH_TOKEN. Never logged; the logging
	// handler masks credential-shaped values as a second line of defense.
	AuthToken string

	// ProjectKey is the SonarQube project to report on.
	// Required, from SONAR_QUBE_PROJECT_KEY.
	ProjectKey string

	// OutputFile is the path the report is written to.
	OutputFile string

	// MarkdownReport switches output to Markdown instead of PDF.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// JSONReport switches output to an indented JSON dump of the report.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// OptionsFilePath is an explicit path to the options file. When empty,
	// the file is searched for in the current directory and then in the
	// XDG config directory.
	OptionsFilePath string

	// MetricKeys are the metrics requested for the overview section.
	MetricKeys []string

	// Timeout is the HTTP client timeout applied to each API call.
	Timeout time.Duration

	// SnippetContext is the number of context lines fetched around an
	// issue's line for its source excerpt. Zero disables excerpts.
	SnippetContext int

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig returns a Config with all optional fields set to their defaults.
// The required fields stay empty until LoadEnv fills them.
func NewConfig() *Config {
	return &Config{
		OutputFile:     DefaultOutputFile,
		MetricKeys:     append([]string(nil), DefaultMetricKeys...),
		Timeout:        DefaultTimeout,
		SnippetContext: DefaultSnippetContext,
	}
}

// XDGConfigDir returns the XDG config directory for sonarpdf
// (~/.config/sonarpdf on Linux). The options file is searched there after
// the current directory.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration after all sources have been applied.
// The first problem found is returned; fixing one error often changes the
// rest, so collecting them all is not worth the noise.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return &MissingConfigurationError{Variable: EnvServerURL}
	}
	if c.AuthToken == "" {
		return &MissingConfigurationError{Variable: EnvAuthToken}
	}
	if c.ProjectKey == "" {
		return &MissingConfigurationError{Variable: EnvProjectKey}
	}
	if c.MarkdownReport && c.JSONReport {
		return ErrConflictingReportFormats
	}
	if c.OutputFile == "" {
		return ErrNoOutputFile
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.SnippetContext < 0 {
		return ErrInvalidSnippetContext
	}
	if len(c.MetricKeys) == 0 {
		return ErrNoMetricKeys
	}
	return nil
}
