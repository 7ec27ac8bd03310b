package sonarqube

import (
	"context"
	"net/url"
	"strings"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// measuresResponse mirrors the api/measures/component payload.
type measuresResponse struct {
	Component struct {
		Key      string    `json:"key"`
		Measures []measure `json:"measures"`
	} `json:"component"`
}

type measure struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// ComponentMeasures fetches the given metrics for the project in a single
// call. Metrics the server does not report (never computed for the project)
// are simply absent from the summary; MetricSummary.Value renders them as
// zero.
func (c *Client) ComponentMeasures(ctx context.Context, projectKey string, metricKeys []string) (model.MetricSummary, error) {
	query := url.Values{}
	query.Set("component", projectKey)
	query.Set("metricKeys", strings.Join(metricKeys, ","))

	var resp measuresResponse
	if err := c.get(ctx, "api/measures/component", query, &resp); err != nil {
		return nil, err
	}

	summary := make(model.MetricSummary, len(resp.Component.Measures))
	for _, m := range resp.Component.Measures {
		summary[m.Metric] = m.Value
	}

	c.logger.Debug("measures fetched",
		"projectKey", projectKey,
		"requested", len(metricKeys),
		"reported", len(summary),
	)
	return summary, nil
}
