package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard"
	dashboarddomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/domain"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/insights-assistant-api/pkg/utils"
)

type CreateEventResponse struct {
	Event    domain.CalendarEvent `json:"event"`
	Fallback bool                 `json:"fallback"`
}

func ListCalendarEvents(service dashboard.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if _, err := utils.ParseDate(query.Get("date")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato AAAA-MM-DD", nil)
			return
		}
		if _, err := utils.ParseMonth(query.Get("month")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use o formato AAAA-MM", nil)
			return
		}

		filter := domain.CalendarFilter{
			Date:  query.Get("date"),
			Month: query.Get("month"),
			Type:  query.Get("type"),
		}

		writeJSON(w, r, http.StatusOK, service.GetEvents(r.Context(), filter))
	}
}

func CreateCalendarEvent(service dashboard.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dashboarddomain.NewCalendarEvent
		if err := decodeBody(w, r, &req, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.Title) == "" || req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título e data são obrigatórios", nil)
			return
		}

		if _, err := utils.ParseDate(req.Date); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		event, fallback := service.CreateEvent(r.Context(), req)

		writeJSON(w, r, http.StatusCreated, CreateEventResponse{Event: event, Fallback: fallback})
	}
}
