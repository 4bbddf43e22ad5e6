package domain

type CalendarEvent struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	CustomerID   *int64 `json:"customerId,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	Reminder     *int   `json:"reminder,omitempty"`
}

// CalendarFilter espelha os parâmetros aceitos por GET /calendar/events
type CalendarFilter struct {
	Date  string
	Month string
	Type  string
}

// CalendarEvents é a lista de eventos junto com a indicação de fallback
type CalendarEvents struct {
	Events   []CalendarEvent `json:"events"`
	Fallback bool            `json:"fallback"`
}
