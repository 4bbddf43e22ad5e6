package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/dashboardclient"
	dashboarddomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/domain"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/mocks"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)

func newService(client dashboardclient.Client) *DashboardService {
	return &DashboardService{Client: client, now: func() time.Time { return fixedNow }}
}

func TestDashboardService_FetchSnapshot(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := newService(mockClient)
	filter := domain.SnapshotFilter{Period: "month", Year: 2025}

	tests := []struct {
		name       string
		setup      func()
		wantStatus int
		wantErr    bool
		wantCause  error
	}{
		{
			name: "sucesso",
			setup: func() {
				resp := &dashboarddomain.EnhancedStatsResponse{Success: true}
				resp.Data.Financial.MonthRevenue = 100
				mockClient.EXPECT().GetEnhancedStats(gomock.Any(), filter).Return(resp, nil)
			},
		},
		{
			name: "status diferente de 2xx",
			setup: func() {
				mockClient.EXPECT().GetEnhancedStats(gomock.Any(), filter).
					Return(nil, &dashboardclient.StatusError{StatusCode: http.StatusBadGateway})
			},
			wantErr:    true,
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "falha de rede",
			setup: func() {
				mockClient.EXPECT().GetEnhancedStats(gomock.Any(), filter).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "success=false",
			setup: func() {
				mockClient.EXPECT().GetEnhancedStats(gomock.Any(), filter).
					Return(&dashboarddomain.EnhancedStatsResponse{Success: false}, nil)
			},
			wantErr:   true,
			wantCause: ErrUnsuccessful,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			snapshot, err := service.FetchSnapshot(context.Background(), filter)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, float64(100), snapshot.Financial.MonthRevenue)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFetchFailed)

			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
			if tt.wantCause != nil {
				assert.Equal(t, tt.wantCause, fetchErr.Cause)
			}
		})
	}
}

func TestDashboardService_GetEvents(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := newService(mockClient)

	t.Run("eventos da API", func(t *testing.T) {
		resp := &dashboarddomain.CalendarResponse{Success: true}
		resp.Data.Events = []domain.CalendarEvent{{ID: 10, Title: "Meeting"}}
		mockClient.EXPECT().GetEvents(gomock.Any(), gomock.Any()).Return(resp, nil)

		events := service.GetEvents(context.Background(), domain.CalendarFilter{})

		assert.False(t, events.Fallback)
		require.Len(t, events.Events, 1)
		assert.Equal(t, int64(10), events.Events[0].ID)
	})

	t.Run("lista vazia nunca é nil", func(t *testing.T) {
		mockClient.EXPECT().GetEvents(gomock.Any(), gomock.Any()).
			Return(&dashboarddomain.CalendarResponse{Success: true}, nil)

		events := service.GetEvents(context.Background(), domain.CalendarFilter{})

		assert.NotNil(t, events.Events)
		assert.Empty(t, events.Events)
	})

	t.Run("fallback com três eventos do dia", func(t *testing.T) {
		mockClient.EXPECT().GetEvents(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		events := service.GetEvents(context.Background(), domain.CalendarFilter{})

		assert.True(t, events.Fallback)
		require.Len(t, events.Events, 3)
		for _, event := range events.Events {
			assert.Equal(t, "2025-06-14", event.Date)
			assert.Equal(t, EventStatusScheduled, event.Status)
		}
		assert.Equal(t, "Ahmad Furniture", events.Events[0].CustomerName)
		assert.Equal(t, "delivery", events.Events[1].Type)
		assert.Equal(t, "4:00 PM", events.Events[2].Time)
	})
}

func TestDashboardService_CreateEvent(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := newService(mockClient)

	input := dashboarddomain.NewCalendarEvent{
		Title:    "Call supplier",
		Type:     "call",
		Date:     "2025-06-15",
		Time:     "11:00 AM",
		Priority: "low",
	}

	t.Run("criado na API", func(t *testing.T) {
		mockClient.EXPECT().CreateEvent(gomock.Any(), input).Return(&dashboarddomain.CalendarEventResponse{
			Success: true,
			Data:    domain.CalendarEvent{ID: 42, Title: input.Title, Status: EventStatusScheduled},
		}, nil)

		event, fallback := service.CreateEvent(context.Background(), input)

		assert.False(t, fallback)
		assert.Equal(t, int64(42), event.ID)
	})

	t.Run("fallback ecoa a entrada", func(t *testing.T) {
		mockClient.EXPECT().CreateEvent(gomock.Any(), input).Return(nil, errors.New("offline"))

		event, fallback := service.CreateEvent(context.Background(), input)

		assert.True(t, fallback)
		assert.Equal(t, fixedNow.UnixMilli(), event.ID)
		assert.Equal(t, EventStatusScheduled, event.Status)
		assert.Equal(t, input.Title, event.Title)
		assert.Equal(t, input.Priority, event.Priority)
	})
}
