package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/imusman-khan/sonarpdf/internal/model"
	"github.com/imusman-khan/sonarpdf/internal/sonarqube"
)

// APIClient is the subset of the SonarQube client the generator depends on.
// Defined here, at the point of use, so tests can substitute a mock without
// touching the real client.
type APIClient interface {
	// SearchIssues returns all unresolved issues for the project plus the
	// server-side facet counts.
	SearchIssues(ctx context.Context, projectKey string) ([]model.Issue, *sonarqube.FacetCounts, error)

	// ComponentMeasures returns the requested project metrics.
	ComponentMeasures(ctx context.Context, projectKey string, metricKeys []string) (model.MetricSummary, error)

	// QualityGateStatus returns the project's quality gate verdict.
	QualityGateStatus(ctx context.Context, projectKey string) (model.QualityGateStatus, error)

	// ShowRule returns a rule's display name and description HTML.
	ShowRule(ctx context.Context, ruleKey string) (*sonarqube.Rule, error)

	// SourceLines returns the file's lines from..to for the component.
	SourceLines(ctx context.Context, componentKey string, from, to int) ([]sonarqube.SourceLine, error)
}

// Generator assembles a model.Report from the SonarQube API.
type Generator struct {
	client  APIClient
	logger  *slog.Logger
	now     func() time.Time
	context int
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithNow replaces the clock used for the report's generation timestamp.
// Tests and reproducible builds pin it to a fixed instant.
func WithNow(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithSnippetContext sets the number of source lines fetched on each side
// of an issue's line. Zero disables source excerpts entirely.
func WithSnippetContext(lines int) GeneratorOption {
	return func(g *Generator) {
		if lines >= 0 {
			g.context = lines
		}
	}
}

// NewGenerator creates a Generator using the given client.
func NewGenerator(client APIClient, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client:  client,
		logger:  slog.Default(),
		now:     time.Now,
		context: 5,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate fetches everything the report needs and assembles it, strictly
// sequentially: quality gate, measures, issues, then per-issue detail.
//
// Any client failure aborts the run with a GenerationError wrapping the
// cause; no partial report is returned. The only forgiven failure is the
// per-issue source excerpt fetch - an issue in generated or deleted code
// renders without its excerpt rather than sinking the whole report.
func (g *Generator) Generate(ctx context.Context, projectKey string, metricKeys []string) (*model.Report, error) {
	gate, err := g.client.QualityGateStatus(ctx, projectKey)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	metrics, err := g.client.ComponentMeasures(ctx, projectKey, metricKeys)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	issues, facets, err := g.client.SearchIssues(ctx, projectKey)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	overview := model.NewOverview(gate, metrics, issues)
	g.checkFacetDrift(overview, facets)

	details := make([]model.IssueDetail, 0, len(issues))
	rules := make(map[string]*sonarqube.Rule)
	for _, issue := range issues {
		detail, err := g.buildDetail(ctx, issue, rules)
		if err != nil {
			return nil, &GenerationError{Err: err}
		}
		details = append(details, detail)
	}

	report := &model.Report{
		ProjectKey:  projectKey,
		GeneratedAt: g.now(),
		Overview:    overview,
		Issues:      details,
	}

	g.logger.Info("report assembled",
		"projectKey", projectKey,
		"issues", report.TotalIssues(),
		"qualityGate", gate,
	)
	return report, nil
}

// buildDetail assembles one issue's detail block: the rule explanation
// (cached per rule key for the duration of the run) and, when the issue
// points at a line, the surrounding source excerpt.
func (g *Generator) buildDetail(ctx context.Context, issue model.Issue, rules map[string]*sonarqube.Rule) (model.IssueDetail, error) {
	detail := model.IssueDetail{Issue: issue}

	rule, ok := rules[issue.Rule]
	if !ok {
		var err error
		rule, err = g.client.ShowRule(ctx, issue.Rule)
		if err != nil {
			return model.IssueDetail{}, err
		}
		rules[issue.Rule] = rule
	}

	detail.RuleName = rule.Name

	// Prefer the sectioned description; fall back to the single blob
	// older servers return.
	why := rule.Section(sonarqube.SectionRootCause)
	fix := rule.Section(sonarqube.SectionHowToFix)
	if why == "" && fix == "" {
		why = rule.HTMLDesc
	}
	detail.WhyText = htmlToText(why)
	detail.FixText = htmlToText(fix)
	detail.Examples = codeExamples(fix)
	if len(detail.Examples) == 0 {
		detail.Examples = codeExamples(rule.HTMLDesc)
	}

	detail.Excerpt = g.fetchExcerpt(ctx, issue)
	return detail, nil
}

// fetchExcerpt retrieves the source lines around the issue's line.
// Failures are logged and swallowed: a missing file yields a nil excerpt,
// not a failed report.
func (g *Generator) fetchExcerpt(ctx context.Context, issue model.Issue) *model.SourceExcerpt {
	if !issue.HasLine() || g.context == 0 {
		return nil
	}

	from := issue.Line - g.context
	to := issue.Line + g.context
	lines, err := g.client.SourceLines(ctx, issue.Component, from, to)
	if err != nil {
		g.logger.Debug("source excerpt unavailable",
			"component", issue.Component,
			"line", issue.Line,
			"error", err,
		)
		return nil
	}
	if len(lines) == 0 {
		return nil
	}

	excerpt := &model.SourceExcerpt{
		StartLine: lines[0].Line,
		Lines:     make([]string, 0, len(lines)),
		IssueLine: issue.Line,
	}
	for _, line := range lines {
		excerpt.Lines = append(excerpt.Lines, stripLineMarkup(line.Code))
	}
	return excerpt
}

// checkFacetDrift compares the counts derived from the fetched issues with
// the server-side facet aggregation. A mismatch means issues changed while
// pagination was in flight; the report stays internally consistent (it is
// built from the issue list), so this only warrants a warning.
func (g *Generator) checkFacetDrift(overview model.Overview, facets *sonarqube.FacetCounts) {
	if facets == nil {
		return
	}
	for severity, serverCount := range facets.Severities {
		if overview.SeverityCounts[severity] != serverCount {
			g.logger.Warn("issue counts drifted during fetch; report uses the fetched issues",
				"severity", severity,
				"fetched", overview.SeverityCounts[severity],
				"serverFacet", serverCount,
			)
			return
		}
	}
}
