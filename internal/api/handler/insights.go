package handler

import (
	"net/http"

	"github.com/vfg2006/insights-assistant-api/internal/usecases/assistant"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
)

type GenerateInsightsRequest struct {
	Question string `json:"question"`
}

func GetLatestInsights(service assistant.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batch, ok := service.LatestInsights()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, assistant.ErrNoInsightsYet.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, batch)
	}
}

// GenerateInsights substitui o lote atual. Em caso de falha o lote anterior
// continua disponível em GET /v1/insights.
func GenerateInsights(service assistant.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req GenerateInsightsRequest
		if err := decodeBody(w, r, &req, true); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		batch, err := service.GenerateInsights(r.Context(), filter, req.Question)
		if err != nil {
			writeUseCaseError(w, r, err, "Não foi possível gerar os insights")
			return
		}

		writeJSON(w, r, http.StatusOK, batch)
	}
}
