package snapshotting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/mocks"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/notifying"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func liveSnapshot(monthRevenue float64) domain.Snapshot {
	return domain.Snapshot{
		Financial: domain.FinancialMetrics{MonthRevenue: monthRevenue},
		Alerts:    []domain.Alert{{Type: "warning", Title: "Low stock"}},
	}
}

func TestService_Refresh(t *testing.T) {
	log.SetupTestLogger()
	filter := domain.SnapshotFilter{Period: "month", Year: 2025}

	t.Run("snapshot ao vivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDashboard := mocks.NewMockIntegrator(ctrl)
		notifier := notifying.NewService(10)
		service := NewService(mockDashboard, notifier, time.Minute)

		mockDashboard.EXPECT().FetchSnapshot(gomock.Any(), filter).Return(liveSnapshot(10), nil)

		state, err := service.Refresh(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, domain.SnapshotSourceLive, state.Source)
		assert.False(t, state.IsDemo())
		assert.Equal(t, float64(10), state.Snapshot.Financial.MonthRevenue)
		assert.Equal(t, filter, state.Filter)
		assert.Empty(t, notifier.List(0))
	})

	t.Run("falha usa o snapshot de demonstração com uma notificação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDashboard := mocks.NewMockIntegrator(ctrl)
		notifier := notifying.NewService(10)
		service := NewService(mockDashboard, notifier, time.Minute)

		mockDashboard.EXPECT().FetchSnapshot(gomock.Any(), filter).
			Return(domain.Snapshot{}, &dashboard.FetchError{Err: dashboard.ErrFetchFailed, StatusCode: 500})

		state, err := service.Refresh(context.Background(), filter)

		require.NoError(t, err)
		assert.True(t, state.IsDemo())
		assert.Equal(t, DemoSnapshot(), state.Snapshot)

		notifications := notifier.List(0)
		require.Len(t, notifications, 1)
		assert.Equal(t, domain.NotificationWarning, notifications[0].Level)
		assert.Equal(t, DemoNotificationDescription, notifications[0].Description)
	})

	t.Run("contexto cancelado não busca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDashboard := mocks.NewMockIntegrator(ctrl)
		service := NewService(mockDashboard, notifying.NewService(10), time.Minute)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Refresh(ctx, filter)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_Refresh_StaleResponseIsDiscarded(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockIntegrator(ctrl)
	service := NewService(mockDashboard, notifying.NewService(10), time.Minute)
	filter := domain.SnapshotFilter{}

	started := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		mockDashboard.EXPECT().FetchSnapshot(gomock.Any(), filter).
			DoAndReturn(func(context.Context, domain.SnapshotFilter) (domain.Snapshot, error) {
				close(started)
				<-release
				return liveSnapshot(1), nil
			}),
		mockDashboard.EXPECT().FetchSnapshot(gomock.Any(), filter).Return(liveSnapshot(2), nil),
	)

	slow := make(chan domain.SnapshotState, 1)
	go func() {
		state, _ := service.Refresh(context.Background(), filter)
		slow <- state
	}()

	<-started
	newer, err := service.Refresh(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, float64(2), newer.Snapshot.Financial.MonthRevenue)

	close(release)
	stale := <-slow
	assert.Equal(t, float64(2), stale.Snapshot.Financial.MonthRevenue)

	current, err := service.Current(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, float64(2), current.Snapshot.Financial.MonthRevenue)
}

func TestService_Current(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockIntegrator(ctrl)
	service := NewService(mockDashboard, notifying.NewService(10), 5*time.Minute)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }
	filter := domain.SnapshotFilter{Period: "week"}

	mockDashboard.EXPECT().FetchSnapshot(gomock.Any(), filter).Return(liveSnapshot(1), nil)
	first, err := service.Current(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, float64(1), first.Snapshot.Financial.MonthRevenue)

	// dentro do intervalo: sem nova busca
	now = now.Add(4 * time.Minute)
	cached, err := service.Current(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, float64(1), cached.Snapshot.Financial.MonthRevenue)

	now = now.Add(2 * time.Minute)
	mockDashboard.EXPECT().FetchSnapshot(gomock.Any(), filter).Return(liveSnapshot(3), nil)
	refreshed, err := service.Current(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, float64(3), refreshed.Snapshot.Financial.MonthRevenue)
}

func TestService_CurrentReturnsIndependentCopy(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockIntegrator(ctrl)
	service := NewService(mockDashboard, notifying.NewService(10), time.Minute)

	mockDashboard.EXPECT().FetchSnapshot(gomock.Any(), gomock.Any()).Return(liveSnapshot(1), nil)

	state, err := service.Current(context.Background(), domain.SnapshotFilter{})
	require.NoError(t, err)
	state.Snapshot.Alerts[0].Title = "changed"

	again, err := service.Current(context.Background(), domain.SnapshotFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Low stock", again.Snapshot.Alerts[0].Title)
}

func TestService_Filters(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockIntegrator(ctrl)
	service := NewService(mockDashboard, notifying.NewService(10), time.Minute)

	mockDashboard.EXPECT().FetchSnapshot(gomock.Any(), gomock.Any()).Return(domain.Snapshot{}, errors.New("x")).Times(2)

	_, _ = service.Refresh(context.Background(), domain.SnapshotFilter{Period: "year", Year: 2024})
	_, _ = service.Refresh(context.Background(), domain.SnapshotFilter{Period: "month", Year: 2025})

	assert.Equal(t, []domain.SnapshotFilter{
		{Period: "month", Year: 2025},
		{Period: "year", Year: 2024},
	}, service.Filters())
}
