package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard"
	"github.com/vfg2006/insights-assistant-api/internal/api/handler/router"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/assistant"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/authenticating"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/chatting"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/notifying"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/reporting"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/snapshotting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(time.Now()),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Snapshot(service snapshotting.Snapshotter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshot",
			Method:  http.MethodGet,
			Handler: GetSnapshot(service),
		},
		{
			Path:    "/v1/snapshot/refresh",
			Method:  http.MethodPost,
			Handler: RefreshSnapshot(service),
		},
	}
}

func Insights(service assistant.Assistant) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetLatestInsights(service),
		},
		{
			Path:    "/v1/insights/generate",
			Method:  http.MethodPost,
			Handler: GenerateInsights(service),
		},
	}
}

func Chat(service chatting.Chatter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/chat/sessions",
			Method:  http.MethodPost,
			Handler: CreateChatSession(service),
		},
		{
			Path:    "/v1/chat/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetChatSession(service),
		},
		{
			Path:    "/v1/chat/sessions/:id/messages",
			Method:  http.MethodPost,
			Handler: SendChatMessage(service),
		},
	}
}

func Calendar(service dashboard.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/calendar/events",
			Method:  http.MethodGet,
			Handler: ListCalendarEvents(service),
		},
		{
			Path:    "/v1/calendar/events",
			Method:  http.MethodPost,
			Handler: CreateCalendarEvent(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryBreakdown(service),
		},
		{
			Path:    "/v1/reports/cash-flow",
			Method:  http.MethodGet,
			Handler: GetCashFlowSeries(service),
		},
		{
			Path:    "/v1/reports/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service),
		},
	}
}

func Notifications(service notifying.Notifier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/notifications",
			Method:  http.MethodGet,
			Handler: ListNotifications(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
