package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/dashboardclient"
	dashboarddomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/domain"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

const (
	EventStatusScheduled = "scheduled"
	dateLayout           = "2006-01-02"
)

type Integrator interface {
	FetchSnapshot(ctx context.Context, filter domain.SnapshotFilter) (domain.Snapshot, error)
	GetEvents(ctx context.Context, filter domain.CalendarFilter) domain.CalendarEvents
	CreateEvent(ctx context.Context, event dashboarddomain.NewCalendarEvent) (domain.CalendarEvent, bool)
}

type DashboardService struct {
	Client dashboardclient.Client
	now    func() time.Time
}

func New(client dashboardclient.Client) Integrator {
	return &DashboardService{
		Client: client,
		now:    time.Now,
	}
}

// FetchSnapshot busca o snapshot atual. Qualquer falha de transporte, status
// diferente de 2xx, corpo inválido ou success=false vira *FetchError.
func (s *DashboardService) FetchSnapshot(ctx context.Context, filter domain.SnapshotFilter) (domain.Snapshot, error) {
	resp, err := s.Client.GetEnhancedStats(ctx, filter)
	if err != nil {
		fetchErr := &FetchError{Err: ErrFetchFailed, Cause: err}

		var statusErr *dashboardclient.StatusError
		if errors.As(err, &statusErr) {
			fetchErr.StatusCode = statusErr.StatusCode
		}
		return domain.Snapshot{}, fetchErr
	}

	if !resp.Success {
		return domain.Snapshot{}, &FetchError{Err: ErrFetchFailed, Cause: ErrUnsuccessful}
	}

	return resp.Data, nil
}

// GetEvents nunca devolve ausência: em caso de falha usa a agenda fixa do dia
func (s *DashboardService) GetEvents(ctx context.Context, filter domain.CalendarFilter) domain.CalendarEvents {
	resp, err := s.Client.GetEvents(ctx, filter)
	if err != nil || !resp.Success {
		log.ForContext(ctx).WithError(errors.Join(ErrCalendarFetch, err)).Warn("Usando agenda de fallback")
		return domain.CalendarEvents{
			Events:   FallbackEvents(s.now()),
			Fallback: true,
		}
	}

	events := resp.Data.Events
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	return domain.CalendarEvents{Events: events}
}

// CreateEvent devolve o evento criado e se ele veio do fallback local
func (s *DashboardService) CreateEvent(ctx context.Context, event dashboarddomain.NewCalendarEvent) (domain.CalendarEvent, bool) {
	resp, err := s.Client.CreateEvent(ctx, event)
	if err == nil && resp.Success {
		return resp.Data, false
	}

	log.ForContext(ctx).WithError(errors.Join(ErrCalendarFetch, err)).Warn("Evento criado apenas localmente")

	return domain.CalendarEvent{
		ID:           s.now().UnixMilli(),
		Title:        event.Title,
		Description:  event.Description,
		Type:         event.Type,
		Date:         event.Date,
		Time:         event.Time,
		CustomerID:   event.CustomerID,
		CustomerName: event.CustomerName,
		Priority:     event.Priority,
		Status:       EventStatusScheduled,
		Reminder:     event.Reminder,
	}, true
}

// FallbackEvents é a agenda exibida quando a API de calendário não responde
func FallbackEvents(now time.Time) []domain.CalendarEvent {
	today := now.Format(dateLayout)

	return []domain.CalendarEvent{
		{
			ID:           1,
			Title:        "Follow up call with Ahmad Furniture",
			Description:  "Discuss payment for last order",
			Type:         "call",
			Date:         today,
			Time:         "10:00 AM",
			CustomerName: "Ahmad Furniture",
			Priority:     string(domain.PriorityHigh),
			Status:       EventStatusScheduled,
		},
		{
			ID:           2,
			Title:        "Delivery to Hassan Carpentry",
			Description:  "Deliver MDF sheets order",
			Type:         "delivery",
			Date:         today,
			Time:         "2:00 PM",
			CustomerName: "Hassan Carpentry",
			Priority:     string(domain.PriorityMedium),
			Status:       EventStatusScheduled,
		},
		{
			ID:           3,
			Title:        "Payment collection",
			Description:  "Collect payment from Sheikh Gulzar",
			Type:         "payment",
			Date:         today,
			Time:         "4:00 PM",
			CustomerName: "Sheikh Gulzar Sahib",
			Priority:     string(domain.PriorityHigh),
			Status:       EventStatusScheduled,
		},
	}
}
