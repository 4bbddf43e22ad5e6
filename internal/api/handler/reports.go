package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/insights-assistant-api/internal/usecases/reporting"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
)

func GetCategoryBreakdown(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		slices, err := service.Categories(r.Context(), filter)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao calcular categorias")
			return
		}

		writeJSON(w, r, http.StatusOK, slices)
	}
}

// GetCashFlowSeries devolve a série sintética; seed é opcional
func GetCashFlowSeries(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		seed := reporting.DefaultSeed
		if raw := r.URL.Query().Get("seed"); raw != "" {
			seed, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "seed inválida", nil)
				return
			}
		}

		series, err := service.CashFlow(r.Context(), filter, seed)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar fluxo de caixa")
			return
		}

		writeJSON(w, r, http.StatusOK, series)
	}
}

func ExportReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		query := r.URL.Query()
		report, err := service.Export(r.Context(), filter, query.Get("type"), query.Get("period"))
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao exportar relatório")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}
