package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/authenticating"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

type fakeAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (f fakeAuthenticator) Login(string, string) (string, error) { return "", errors.New("unused") }

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func ownerEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(OwnerFromContext(r.Context())))
	})
}

func TestAuthMiddleware(t *testing.T) {
	valid := fakeAuthenticator{claims: &domain.Claims{UserEmail: "owner@example.com"}}
	expired := fakeAuthenticator{err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")}
	misconfigured := fakeAuthenticator{err: authenticating.NewAuthError(authenticating.ErrNotConfigured, apiErrors.ErrInternalServer, "")}

	tests := []struct {
		name       string
		auth       authenticating.Authenticator
		enabled    bool
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "desabilitado", auth: valid, path: "/v1/insights", wantStatus: http.StatusOK},
		{name: "rota pública", auth: valid, enabled: true, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "sem header", auth: valid, enabled: true, path: "/v1/insights", wantStatus: http.StatusUnauthorized, wantBody: apiErrors.ErrInvalidToken},
		{name: "sem Bearer", auth: valid, enabled: true, path: "/v1/insights", header: "abc", wantStatus: http.StatusUnauthorized},
		{name: "token expirado", auth: expired, enabled: true, path: "/v1/insights", header: "Bearer abc", wantStatus: http.StatusUnauthorized, wantBody: apiErrors.ErrExpiredToken},
		{name: "sem segredo configurado", auth: misconfigured, enabled: true, path: "/v1/insights", header: "Bearer abc", wantStatus: http.StatusInternalServerError, wantBody: apiErrors.ErrInternalServer},
		{name: "token válido", auth: valid, enabled: true, path: "/v1/insights", header: "Bearer abc", wantStatus: http.StatusOK, wantBody: "owner@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.auth, tt.enabled)(ownerEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
		if r.URL.Path == "/panic" {
			panic("boom")
		}
		w.WriteHeader(http.StatusCreated)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ok", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
