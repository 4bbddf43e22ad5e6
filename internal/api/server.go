package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard"
	"github.com/vfg2006/insights-assistant-api/internal/api/handler"
	"github.com/vfg2006/insights-assistant-api/internal/api/handler/router"
	"github.com/vfg2006/insights-assistant-api/internal/config"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/assistant"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/authenticating"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/chatting"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/notifying"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/reporting"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/snapshotting"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
	"github.com/vfg2006/insights-assistant-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Snapshots     snapshotting.Snapshotter
	Assistant     assistant.Assistant
	Chat          chatting.Chatter
	Reports       reporting.Reporter
	Notifications notifying.Notifier
	Dashboard     dashboard.Integrator
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares global
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Snapshot(services.Snapshots)...),
		router.WithRoutes(handler.Insights(services.Assistant)...),
		router.WithRoutes(handler.Chat(services.Chat)...),
		router.WithRoutes(handler.Calendar(services.Dashboard)...),
		router.WithRoutes(handler.Reports(services.Reports)...),
		router.WithRoutes(handler.Notifications(services.Notifications)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator, cfg.Auth.Enabled),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      writeTimeout(cfg),
		},
	}
}

// writeTimeout cobre o pior turno: busca do snapshot seguida da geração
func writeTimeout(cfg *config.Config) time.Duration {
	return cfg.Dashboard.Timeout + cfg.Generation.Timeout + 15*time.Second
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}
