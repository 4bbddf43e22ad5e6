package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/insights-assistant-api/infrastructure/database/postgres"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard/dashboardclient"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/insights-assistant-api/infrastructure/repository"
	"github.com/vfg2006/insights-assistant-api/internal/api"
	"github.com/vfg2006/insights-assistant-api/internal/api/handler"
	"github.com/vfg2006/insights-assistant-api/internal/config"
	"github.com/vfg2006/insights-assistant-api/internal/scheduler"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/assistant"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/authenticating"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/chatting"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/notifying"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/reporting"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/snapshotting"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(log.Options{
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	archive, closeArchive := transcriptArchive(ctx, cfg.Database)
	defer closeArchive()

	notifier := notifying.NewService(notifying.DefaultCapacity)

	dashboardIntegrator := dashboard.New(dashboardclient.NewClient(cfg))
	generator := gemini.New(cfg)

	snapshotService := snapshotting.NewService(dashboardIntegrator, notifier, cfg.SnapshotRefresh.Interval)
	assistantService := assistant.NewService(snapshotService, generator, notifier)
	chatService := chatting.NewService(assistantService, archive, notifier)
	reportService := reporting.NewService(snapshotService, cfg.Report.Palette, cfg.App.DemoMode)
	authenticator := authenticating.NewService(cfg.Auth)

	if cfg.App.DemoMode {
		log.L.Warn("DEMO_MODE habilitado: séries sintéticas serão servidas nos relatórios")
	}

	snapshotRefreshService := scheduler.NewSnapshotRefreshService(snapshotService, assistantService, cfg)
	if err := snapshotRefreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de atualização de snapshots")
	} else {
		log.L.Info("Agendador de atualização de snapshots iniciado com sucesso")
	}

	server := api.New(cfg, api.Services{
		Snapshots:     snapshotService,
		Assistant:     assistantService,
		Chat:          chatService,
		Reports:       reportService,
		Notifications: notifier,
		Dashboard:     dashboardIntegrator,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			scheduler.SnapshotRefreshJob: snapshotRefreshService,
		},
	})

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// transcriptArchive usa o PostgreSQL quando DATABASE_URL está configurada e
// cai para memória caso contrário ou se a conexão falhar
func transcriptArchive(ctx context.Context, dbConfig config.Database) (repository.TranscriptRepository, func()) {
	if dbConfig.URL == "" {
		log.L.Info("DATABASE_URL não configurada, histórico de chat mantido em memória")
		return repository.NewMemoryTranscriptRepository(), func() {}
	}

	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Error("Erro ao conectar ao PostgreSQL, histórico de chat mantido em memória")
		return repository.NewMemoryTranscriptRepository(), func() {}
	}

	if err := postgres.Migrate(ctx, conn); err != nil {
		log.L.WithError(err).Error("Erro ao preparar tabelas, histórico de chat mantido em memória")
		_ = conn.Close()
		return repository.NewMemoryTranscriptRepository(), func() {}
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return repository.NewTranscriptRepository(conn), func() { _ = conn.Close() }
}
