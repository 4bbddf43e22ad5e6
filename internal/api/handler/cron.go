package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

// CronJobTypeAll dispara todos os jobs registrados
const CronJobTypeAll = "all"

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices associa o tipo usado na URL ao job
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s)+1)
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return append(types, CronJobTypeAll)
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		log.ForContext(r.Context()).WithField("source", cronType).Info("Execução manual de cron job solicitada")

		if cronType == CronJobTypeAll {
			started := make([]string, 0, len(services))
			for t, job := range services {
				if job.TriggerManualSync() {
					started = append(started, t)
				}
			}
			sort.Strings(started)

			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": "Cron jobs iniciadas",
				"type":    cronType,
				"started": started,
			})
			return
		}

		job, ok := services[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Sincronização já em andamento", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for t, job := range services {
			status[t] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
