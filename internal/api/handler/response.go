package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/assistant"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/chatting"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/reporting"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// limite do corpo aceito nas rotas que recebem JSON
const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody aceita corpo vazio quando optional=true
func decodeBody(w http.ResponseWriter, r *http.Request, out any, optional bool) error {
	if r.Body == nil || r.ContentLength == 0 {
		if optional {
			return nil
		}
		return errors.New("corpo da requisição ausente")
	}

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(out)
	if err != nil && optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// parseFilter lê os seletores period e year da query string
func parseFilter(r *http.Request) (domain.SnapshotFilter, error) {
	query := r.URL.Query()
	filter := domain.SnapshotFilter{Period: strings.TrimSpace(query.Get("period"))}

	if raw := strings.TrimSpace(query.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year <= 0 {
			return domain.SnapshotFilter{}, errors.Errorf("ano inválido: %q", raw)
		}
		filter.Year = year
	}

	return filter, nil
}

// writeUseCaseError traduz os erros dos casos de uso para o formato da API
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, chatting.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Sessão não encontrada", nil)
	case errors.Is(err, chatting.ErrSessionBusy):
		apiErrors.WriteError(w, apiErrors.ErrSessionBusy, "Aguarde a resposta anterior antes de enviar outra pergunta", nil)
	case errors.Is(err, chatting.ErrEmptyQuestion), errors.Is(err, assistant.ErrEmptyQuestion):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pergunta não informada", nil)
	case errors.Is(err, reporting.ErrDemoModeOnly):
		apiErrors.WriteError(w, apiErrors.ErrDemoModeOnly, "Disponível apenas com DEMO_MODE habilitado", nil)
	case gemini.IsGenerationError(err):
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrGenerationFailed, message, nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrCommunication, message, nil)
	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
