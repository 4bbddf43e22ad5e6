package dashboardclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	dashboarddomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/domain"
	"github.com/vfg2006/insights-assistant-api/internal/config"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetEnhancedStats(ctx context.Context, filter domain.SnapshotFilter) (*dashboarddomain.EnhancedStatsResponse, error)
	GetEvents(ctx context.Context, filter domain.CalendarFilter) (*dashboarddomain.CalendarResponse, error)
	CreateEvent(ctx context.Context, event dashboarddomain.NewCalendarEvent) (*dashboarddomain.CalendarEventResponse, error)
}

// StatusError é devolvido quando a API responde com status diferente de 2xx
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, e.Body)
}

type DashboardClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Dashboard.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &DashboardClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Dashboard.BaseURL,
	}
}

func (c *DashboardClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
