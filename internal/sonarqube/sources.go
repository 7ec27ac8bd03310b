package sonarqube

import (
	"context"
	"net/url"
	"strconv"
)

// SourceLine is one line of source code as returned by api/sources/lines.
// Code carries the server's syntax-highlighting markup (<span> wrappers);
// stripping it is the report layer's job.
type SourceLine struct {
	Line int    `json:"line"`
	Code string `json:"code"`
}

// sourceLinesResponse mirrors the api/sources/lines payload.
type sourceLinesResponse struct {
	Sources []SourceLine `json:"sources"`
}

// SourceLines fetches the file's lines from..to (1-based, inclusive) for
// the component. from is clamped to 1; the server clamps to past the end of
// the file on its own.
func (c *Client) SourceLines(ctx context.Context, componentKey string, from, to int) ([]SourceLine, error) {
	if from < 1 {
		from = 1
	}

	query := url.Values{}
	query.Set("key", componentKey)
	query.Set("from", strconv.Itoa(from))
	query.Set("to", strconv.Itoa(to))

	var resp sourceLinesResponse
	if err := c.get(ctx, "api/sources/lines", query, &resp); err != nil {
		return nil, err
	}
	return resp.Sources, nil
}
