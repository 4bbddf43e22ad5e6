package notifying

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

func TestService_NotifyAndList(t *testing.T) {
	log.SetupTestLogger()
	service := NewService(2)
	ctx := context.Background()

	first := service.Notify(ctx, domain.NotificationSuccess, "Insights Updated", "ok")
	second := service.Notify(ctx, domain.NotificationWarning, "Using Demo Data", "demo")
	third := service.Notify(ctx, domain.NotificationError, "Error", "falhou")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(3), third.ID)

	all := service.List(0)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, third.ID, all[1].ID)

	since := service.List(second.ID)
	require.Len(t, since, 1)
	assert.Equal(t, domain.NotificationError, since[0].Level)
}

func TestNewService_DefaultCapacity(t *testing.T) {
	service := NewService(0)
	assert.Equal(t, DefaultCapacity, service.capacity)
}
