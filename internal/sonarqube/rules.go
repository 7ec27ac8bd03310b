package sonarqube

import (
	"context"
	"net/url"
)

// Description section keys used by api/rules/show.
// Modern SonarQube splits rule documentation into sections; the report uses
// the "why" and "how to fix" ones.
const (
	SectionRootCause = "root_cause"
	SectionHowToFix  = "how_to_fix"
)

// Rule is the subset of api/rules/show this tool renders: the display name
// and the descriptive HTML explaining the rule.
type Rule struct {
	Key  string `json:"key"`
	Name string `json:"name"`

	// HTMLDesc is the single-blob description older servers return.
	HTMLDesc string `json:"htmlDesc"`

	// DescriptionSections is the sectioned description newer servers
	// return. When present it is preferred over HTMLDesc.
	DescriptionSections []DescriptionSection `json:"descriptionSections"`
}

// DescriptionSection is one titled chunk of a rule's documentation.
type DescriptionSection struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}

// Section returns the HTML content of the named description section, or
// empty string when the rule does not have it.
func (r *Rule) Section(key string) string {
	for _, s := range r.DescriptionSections {
		if s.Key == key {
			return s.Content
		}
	}
	return ""
}

// ruleShowResponse mirrors the api/rules/show payload.
type ruleShowResponse struct {
	Rule Rule `json:"rule"`
}

// ShowRule fetches the rule's name and description HTML.
func (c *Client) ShowRule(ctx context.Context, ruleKey string) (*Rule, error) {
	query := url.Values{}
	query.Set("key", ruleKey)

	var resp ruleShowResponse
	if err := c.get(ctx, "api/rules/show", query, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("rule fetched", "ruleKey", ruleKey, "sections", len(resp.Rule.DescriptionSections))
	return &resp.Rule, nil
}
