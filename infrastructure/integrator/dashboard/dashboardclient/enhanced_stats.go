package dashboardclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	dashboarddomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/domain"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

func (c *DashboardClient) GetEnhancedStats(ctx context.Context, filter domain.SnapshotFilter) (*dashboarddomain.EnhancedStatsResponse, error) {
	query := url.Values{}
	if filter.Period != "" {
		query.Set("period", filter.Period)
	}
	if filter.Year > 0 {
		query.Set("year", strconv.Itoa(filter.Year))
	}

	var response dashboarddomain.EnhancedStatsResponse
	if err := c.do(ctx, http.MethodGet, "/dashboard/enhanced-stats", query, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
