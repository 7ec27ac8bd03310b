// Package main provides the entry point for the sonarpdf CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/imusman-khan/sonarpdf/internal/config"
	"github.com/imusman-khan/sonarpdf/internal/log"
	"github.com/imusman-khan/sonarpdf/internal/model"
	"github.com/imusman-khan/sonarpdf/internal/report"
	"github.com/imusman-khan/sonarpdf/internal/sonarqube"
)

// NewRootCmd creates the root command for sonarpdf.
//
// The tool does one thing, so the report run is the root command itself
// rather than a subcommand; "sonarpdf" with the three environment variables
// set produces a report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sonarpdf",
		Short: "Generate a PDF report from a SonarQube project",
		Long: `sonarpdf queries a SonarQube server for one project's quality gate,
metrics, and unresolved issues, and renders them as a formatted PDF report.

Configuration comes from three required environment variables:
  SONAR_QUBE_URL          Base URL of the SonarQube server
  SONAR_QUBE_AUTH_TOKEN   API token used as a bearer token
  SONAR_QUBE_PROJECT_KEY  Project to report on

Examples:
  # Generate the default PDF report (output/report.pdf)
  sonarpdf

  # Write the PDF somewhere else
  sonarpdf --output reports/sonar.pdf

  # Markdown instead of PDF, e.g. for a pull request comment
  sonarpdf --markdown

  # Machine-readable dump of everything the report contains
  sonarpdf --json --output report.json

Optional settings (output path, format, metrics, timeout) can also be put
in a .sonarpdf.yaml options file in the current directory or under the XDG
config directory; flags win over the file.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("output", "o", "",
		fmt.Sprintf("Write the report to this path (default %q, extension follows the format)", config.DefaultOutputFile))
	cmd.Flags().BoolP("markdown", "m", false,
		"Output a Markdown report (mutually exclusive with --json)")
	cmd.Flags().BoolP("json", "j", false,
		"Output a JSON report (mutually exclusive with --markdown)")
	cmd.Flags().StringP("config", "c", "",
		"Options file path (default: .sonarpdf.yaml in current or XDG config directory)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runReportCmd executes the report run.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential masking
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runReport(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig assembles the Config: defaults, then the options file, then
// flags, then the required environment variables. Later sources win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.OptionsFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the options file if one exists. An explicitly given path that
	// does not resolve is an error; a missing default file is not.
	explicitPath := cfg.OptionsFilePath != ""
	optionsPath := config.FindOptionsFile(cfg.OptionsFilePath)
	if optionsPath != "" {
		f, err := config.LoadOptionsFile(optionsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load options file %s: %w", optionsPath, err)
		}
		if err := f.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid options file %s: %w", optionsPath, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("options file not found: %s", cfg.OptionsFilePath)
	}

	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if markdown {
		cfg.MarkdownReport = true
	}

	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	if jsonOut {
		cfg.JSONReport = true
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	if output != "" {
		cfg.OutputFile = output
	} else if cfg.OutputFile == config.DefaultOutputFile {
		// Nobody chose a path, so the default extension should match the
		// chosen format.
		cfg.OutputFile = defaultOutputFor(cfg)
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultOutputFor swaps the default output path's extension to match the
// report format.
func defaultOutputFor(cfg *config.Config) string {
	base := strings.TrimSuffix(config.DefaultOutputFile, filepath.Ext(config.DefaultOutputFile))
	switch {
	case cfg.MarkdownReport:
		return base + ".md"
	case cfg.JSONReport:
		return base + ".json"
	default:
		return config.DefaultOutputFile
	}
}

// runReport fetches the project data and writes the report.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	client, err := sonarqube.NewClient(cfg.ServerURL, cfg.AuthToken,
		sonarqube.WithTimeout(cfg.Timeout),
		sonarqube.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	generator := report.NewGenerator(client,
		report.WithLogger(logger),
		report.WithSnippetContext(cfg.SnippetContext),
	)

	fmt.Fprintf(stdout, "Generating report for %s...\n", cfg.ProjectKey)

	rep, err := generator.Generate(ctx, cfg.ProjectKey, cfg.MetricKeys)
	if err != nil {
		return err
	}

	if err := writeReport(cfg, rep); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Report generated successfully: %s\n", cfg.OutputFile)
	return nil
}

// writeReport renders the report in the configured format.
func writeReport(cfg *config.Config, rep *model.Report) error {
	if !cfg.MarkdownReport && !cfg.JSONReport {
		return report.WritePDFFile(rep, cfg.OutputFile)
	}

	// Markdown and JSON share the plain-file path handling.
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports enumerate code weaknesses, so keep them owner-readable only.
	f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	var writer report.Writer
	if cfg.MarkdownReport {
		writer = report.NewMarkdownWriter(f)
	} else {
		writer = report.NewJSONWriter(f)
	}
	_, err = writer.Write(rep)
	return err
}
