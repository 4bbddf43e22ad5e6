// Package scheduler contém os serviços de agendamento em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/insights-assistant-api/internal/config"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/assistant"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/snapshotting"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

// SnapshotRefreshJob identifica o job nas rotas de cron
const SnapshotRefreshJob = "snapshot-refresh"

type SnapshotRefreshConfig struct {
	Interval             time.Duration
	SyncEnabled          bool
	AutoGenerateInsights bool
}

// SnapshotRefreshService mantém os snapshots em cache atualizados e, quando
// configurado, gera o primeiro lote de insights assim que há dados
type SnapshotRefreshService struct {
	scheduler           *gocron.Scheduler
	snapshots           snapshotting.Snapshotter
	assistant           assistant.Assistant
	config              SnapshotRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRefreshed       int
}

func NewSnapshotRefreshService(
	snapshots snapshotting.Snapshotter,
	assistantService assistant.Assistant,
	cfg *config.Config,
) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		Interval:             cfg.SnapshotRefresh.Interval,
		SyncEnabled:          cfg.SnapshotRefresh.Enabled,
		AutoGenerateInsights: cfg.SnapshotRefresh.AutoGenerateInsights,
	}
	if refreshConfig.Interval <= 0 {
		refreshConfig.Interval = snapshotting.DefaultRefreshInterval
	}

	log.L.WithFields(log.Fields{
		"interval":      refreshConfig.Interval.String(),
		"auto_insights": refreshConfig.AutoGenerateInsights,
		"source":        SnapshotRefreshJob,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		snapshots: snapshots,
		assistant: assistantService,
		config:    refreshConfig,
	}
}

func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Atualização periódica de snapshots desabilitada por configuração")
		return nil
	}

	log.L.WithField("interval", s.config.Interval.String()).Info("Iniciando atualização periódica de snapshots")

	// a primeira execução acontece imediatamente ao iniciar
	_, err := s.scheduler.Every(s.config.Interval).Do(func() {
		if err := s.RefreshAll(ctx); err != nil {
			log.L.WithError(err).Error("Erro na atualização periódica de snapshots")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando atualização periódica de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshAll atualiza todos os filtros já consultados, incluindo o padrão
func (s *SnapshotRefreshService) RefreshAll(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Warn("Atualização de snapshots já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	refreshed := 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastRefreshed = refreshed
		s.syncMutex.Unlock()
	}()

	filters := withDefaultFilter(s.snapshots.Filters())

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, filter := range filters {
		wg.Add(1)
		go func(filter domain.SnapshotFilter) {
			defer wg.Done()

			state, err := s.snapshots.Refresh(ctx, filter)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			refreshed++

			log.L.WithFields(log.Fields{
				"source": string(state.Source),
				"period": filter.Period,
				"year":   filter.Year,
			}).Debug("Snapshot atualizado")
		}(filter)
	}
	wg.Wait()

	if firstErr != nil {
		return fmt.Errorf("erro ao atualizar snapshots: %w", firstErr)
	}

	log.L.Infof("Atualização de snapshots concluída: %d filtros", refreshed)

	if s.config.AutoGenerateInsights {
		s.generateFirstBatch(ctx)
	}

	return nil
}

func (s *SnapshotRefreshService) generateFirstBatch(ctx context.Context) {
	if _, ok := s.assistant.LatestInsights(); ok {
		return
	}

	batch, err := s.assistant.GenerateInsights(ctx, domain.SnapshotFilter{}, "")
	if err != nil {
		log.L.WithError(err).Warn("Não foi possível gerar o primeiro lote de insights")
		return
	}

	log.L.Infof("Primeiro lote de insights gerado: %s", batch.ID)
}

// TriggerManualSync inicia uma atualização fora do agendamento.
// Devolve false quando já existe uma em andamento.
func (s *SnapshotRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Atualização de snapshots já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando atualização manual de snapshots")
	go func() {
		if err := s.RefreshAll(context.Background()); err != nil {
			log.L.WithError(err).Error("Erro na atualização manual de snapshots")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval":          s.config.Interval.String(),
		"sync_running":           s.syncRunning,
		"auto_generate_insights": s.config.AutoGenerateInsights,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_refreshed_filters": s.lastRefreshed,
	}
}

func withDefaultFilter(filters []domain.SnapshotFilter) []domain.SnapshotFilter {
	for _, f := range filters {
		if f == (domain.SnapshotFilter{}) {
			return filters
		}
	}
	return append([]domain.SnapshotFilter{{}}, filters...)
}
