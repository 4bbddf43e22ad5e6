package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/chatting"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/insights-assistant-api/pkg/middleware"
)

type SendMessageRequest struct {
	Question string `json:"question"`
}

func CreateChatSession(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transcript := service.CreateSession(r.Context(), middleware.OwnerFromContext(r.Context()))
		writeJSON(w, r, http.StatusCreated, transcript)
	}
}

func GetChatSession(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		transcript, err := service.Transcript(r.Context(), sessionID, middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao obter sessão")
			return
		}

		writeJSON(w, r, http.StatusOK, transcript)
	}
}

// SendChatMessage executa um turno da conversa. Uma falha de geração ainda
// responde 200 com failed=true e a mensagem de desculpas no histórico.
func SendChatMessage(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filter, err := parseFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req SendMessageRequest
		if err := decodeBody(w, r, &req, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		turn, err := service.Send(r.Context(), sessionID, middleware.OwnerFromContext(r.Context()), filter, req.Question)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao enviar mensagem")
			return
		}

		writeJSON(w, r, http.StatusOK, turn)
	}
}
