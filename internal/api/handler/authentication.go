package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/authenticating"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeBody(w, r, &req, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// handleLoginError responde sempre com a mesma mensagem para credenciais
// recusadas; o motivo real fica só no log
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	if !authenticating.IsCredentialsError(err) {
		logger.Error("Erro interno ao realizar login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
		return
	}

	code := apiErrors.ErrInvalidCredentials
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		code = authErr.Code
	}

	logger.Warn("Login recusado")
	apiErrors.WriteError(w, code, "Credenciais inválidas", nil)
}
