package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/insights-assistant-api/internal/usecases/notifying"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
)

// ListNotifications devolve os avisos com ID maior que since
func ListNotifications(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var since int64
		if raw := r.URL.Query().Get("since"); raw != "" {
			var err error
			since, err = strconv.ParseInt(raw, 10, 64)
			if err != nil || since < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since inválido", nil)
				return
			}
		}

		writeJSON(w, r, http.StatusOK, service.List(since))
	}
}
