package dashboardclient

import (
	"context"
	"net/http"
	"net/url"

	dashboarddomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/domain"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

func (c *DashboardClient) GetEvents(ctx context.Context, filter domain.CalendarFilter) (*dashboarddomain.CalendarResponse, error) {
	query := url.Values{}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	if filter.Month != "" {
		query.Set("month", filter.Month)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}

	var response dashboarddomain.CalendarResponse
	if err := c.do(ctx, http.MethodGet, "/calendar/events", query, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *DashboardClient) CreateEvent(ctx context.Context, event dashboarddomain.NewCalendarEvent) (*dashboarddomain.CalendarEventResponse, error) {
	var response dashboarddomain.CalendarEventResponse
	if err := c.do(ctx, http.MethodPost, "/calendar/events", nil, event, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
