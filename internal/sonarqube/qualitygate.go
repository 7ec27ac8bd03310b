package sonarqube

import (
	"context"
	"net/url"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// qualityGateResponse mirrors the api/qualitygates/project_status payload.
// Only the overall status is used; per-condition details are not rendered.
type qualityGateResponse struct {
	ProjectStatus struct {
		Status string `json:"status"`
	} `json:"projectStatus"`
}

// QualityGateStatus fetches the project's quality gate verdict.
// The server's OK/ERROR/WARN vocabulary is mapped to PASSED/FAILED/WARN.
func (c *Client) QualityGateStatus(ctx context.Context, projectKey string) (model.QualityGateStatus, error) {
	query := url.Values{}
	query.Set("projectKey", projectKey)

	var resp qualityGateResponse
	if err := c.get(ctx, "api/qualitygates/project_status", query, &resp); err != nil {
		return model.QualityGateUnknown, err
	}

	status := model.ParseQualityGateStatus(resp.ProjectStatus.Status)
	c.logger.Debug("quality gate fetched", "projectKey", projectKey, "status", status)
	return status, nil
}
