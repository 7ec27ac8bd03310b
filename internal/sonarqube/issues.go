package sonarqube

import (
	"context"
	"net/url"
	"strconv"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// issueSearchPageSize is the page size for api/issues/search.
// 500 is the server-side maximum; fewer pages means fewer round trips.
const issueSearchPageSize = 500

// FacetCounts holds the server-side severity and type aggregation that
// api/issues/search returns alongside the first page. The report derives
// its own counts from the issue list itself; these are kept so the
// generator can flag a disagreement (issues changing mid-pagination).
type FacetCounts struct {
	// Severities maps severity to the server's count for it.
	Severities map[model.Severity]int

	// Types maps issue type to the server's count for it.
	Types map[model.IssueType]int
}

// issuesSearchResponse mirrors the api/issues/search payload.
type issuesSearchResponse struct {
	Total  int           `json:"total"`
	Paging paging        `json:"paging"`
	Issues []model.Issue `json:"issues"`
	Facets []facet       `json:"facets"`
}

type paging struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

type facet struct {
	Property string       `json:"property"`
	Values   []facetValue `json:"values"`
}

type facetValue struct {
	Val   string `json:"val"`
	Count int    `json:"count"`
}

// SearchIssues fetches all unresolved issues for the project, following the
// server's pagination until every page is collected. Issues are returned in
// the order the server yields them, page after page, with no reordering or
// filtering. The facet counts from the first page are returned alongside.
func (c *Client) SearchIssues(ctx context.Context, projectKey string) ([]model.Issue, *FacetCounts, error) {
	var (
		all    []model.Issue
		facets *FacetCounts
		total  int
	)

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("componentKeys", projectKey)
		query.Set("resolved", "false")
		query.Set("facets", "severities,types")
		query.Set("ps", strconv.Itoa(issueSearchPageSize))
		query.Set("p", strconv.Itoa(page))

		var resp issuesSearchResponse
		if err := c.get(ctx, "api/issues/search", query, &resp); err != nil {
			return nil, nil, err
		}

		if page == 1 {
			facets = parseFacets(resp.Facets)
			total = resp.Total
			if resp.Paging.Total > 0 {
				total = resp.Paging.Total
			}
		}

		// An empty page means the server has nothing more to say, even
		// if the advertised total was never reached (issues can be
		// resolved between page fetches).
		if len(resp.Issues) == 0 {
			break
		}

		all = append(all, resp.Issues...)
		if len(all) >= total {
			break
		}
	}

	c.logger.Debug("issue search complete",
		"projectKey", projectKey,
		"issues", len(all),
		"advertisedTotal", total,
	)
	return all, facets, nil
}

// parseFacets converts the wire facet list into typed count maps.
// Unknown facet properties are ignored.
func parseFacets(facets []facet) *FacetCounts {
	counts := &FacetCounts{
		Severities: make(map[model.Severity]int),
		Types:      make(map[model.IssueType]int),
	}
	for _, f := range facets {
		switch f.Property {
		case "severities":
			for _, v := range f.Values {
				counts.Severities[model.Severity(v.Val)] = v.Count
			}
		case "types":
			for _, v := range f.Values {
				counts.Types[model.IssueType(v.Val)] = v.Count
			}
		}
	}
	return counts
}
