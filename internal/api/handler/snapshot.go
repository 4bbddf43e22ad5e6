package handler

import (
	"net/http"

	"github.com/vfg2006/insights-assistant-api/internal/usecases/snapshotting"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
)

// GetSnapshot devolve o snapshot em cache, buscando de novo se estiver velho.
// source=demo indica que o painel deve exibir o aviso de dados de demonstração.
func GetSnapshot(service snapshotting.Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		state, err := service.Current(r.Context(), filter)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao obter snapshot")
			return
		}

		writeJSON(w, r, http.StatusOK, state)
	}
}

func RefreshSnapshot(service snapshotting.Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		state, err := service.Refresh(r.Context(), filter)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao atualizar snapshot")
			return
		}

		writeJSON(w, r, http.StatusOK, state)
	}
}
