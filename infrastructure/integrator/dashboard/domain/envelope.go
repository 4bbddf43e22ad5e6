package dashboarddomain

import "github.com/vfg2006/insights-assistant-api/internal/domain"

// EnhancedStatsResponse é o envelope de GET /dashboard/enhanced-stats
type EnhancedStatsResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    domain.Snapshot `json:"data"`
}

// CalendarResponse é o envelope de GET /calendar/events
type CalendarResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Events []domain.CalendarEvent `json:"events"`
	} `json:"data"`
}

// CalendarEventResponse é o envelope de POST /calendar/events
type CalendarEventResponse struct {
	Success bool                 `json:"success"`
	Data    domain.CalendarEvent `json:"data"`
}

// NewCalendarEvent é o corpo aceito na criação de eventos; id e status são
// atribuídos pelo servidor
type NewCalendarEvent struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	CustomerID   *int64 `json:"customerId,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	Priority     string `json:"priority"`
	Reminder     *int   `json:"reminder,omitempty"`
}
