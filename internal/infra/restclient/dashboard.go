package restclient

import (
	"context"
	"net/http"

	"github.com/freelancedesk/freelance-tracker/internal/domain/stats"
)

// DashboardSummary fetches the server-computed dashboard metrics.
func (c *Client) DashboardSummary(ctx context.Context) (*stats.Summary, error) {
	var out stats.Summary
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
