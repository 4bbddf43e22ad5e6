package snapshotting

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/dashboard"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/notifying"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

const (
	DefaultRefreshInterval = 5 * time.Minute

	DemoNotificationTitle       = "Using Demo Data"
	DemoNotificationDescription = "Failed to load reports data. Using demo data."
)

type Snapshotter interface {
	Refresh(ctx context.Context, filter domain.SnapshotFilter) (domain.SnapshotState, error)
	Current(ctx context.Context, filter domain.SnapshotFilter) (domain.SnapshotState, error)
	Filters() []domain.SnapshotFilter
}

// entry guarda o último snapshot aplicado de um filtro e os números de
// sequência das buscas emitidas/aplicadas
type entry struct {
	state    domain.SnapshotState
	hasState bool
	issued   uint64
	applied  uint64
}

type Service struct {
	dashboard dashboard.Integrator
	notifier  notifying.Notifier
	interval  time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	filters map[string]domain.SnapshotFilter
	now     func() time.Time
}

func NewService(integrator dashboard.Integrator, notifier notifying.Notifier, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &Service{
		dashboard: integrator,
		notifier:  notifier,
		interval:  interval,
		entries:   make(map[string]*entry),
		filters:   make(map[string]domain.SnapshotFilter),
		now:       time.Now,
	}
}

func filterKey(filter domain.SnapshotFilter) string {
	return fmt.Sprintf("%s|%d", filter.Period, filter.Year)
}

func (s *Service) entryFor(filter domain.SnapshotFilter) *entry {
	key := filterKey(filter)
	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
		s.filters[key] = filter
	}
	return e
}

// Refresh busca um novo snapshot. Falhas da API são recuperadas com o
// snapshot de demonstração e uma única notificação de aviso. Respostas que
// chegam depois de uma busca mais nova já aplicada são descartadas.
func (s *Service) Refresh(ctx context.Context, filter domain.SnapshotFilter) (domain.SnapshotState, error) {
	if err := ctx.Err(); err != nil {
		return domain.SnapshotState{}, err
	}

	logger := log.ForContext(ctx).WithField("source", "snapshot")

	s.mu.Lock()
	e := s.entryFor(filter)
	e.issued++
	seq := e.issued
	s.mu.Unlock()

	state := domain.SnapshotState{
		Source: domain.SnapshotSourceLive,
		Filter: filter,
	}

	snapshot, err := s.dashboard.FetchSnapshot(ctx, filter)
	if err != nil {
		logger.WithError(err).Warn("Falha ao buscar snapshot, usando dados de demonstração")
		snapshot = DemoSnapshot()
		state.Source = domain.SnapshotSourceDemo
	}
	state.Snapshot = snapshot
	state.FetchedAt = s.now()

	s.mu.Lock()
	if seq <= e.applied {
		current, applied := e.state, e.applied
		s.mu.Unlock()
		logger.Debugf("Resposta antiga descartada (seq %d, aplicada %d)", seq, applied)
		return cloneState(current), nil
	}
	e.applied = seq
	e.state = state
	e.hasState = true
	s.mu.Unlock()

	if state.IsDemo() {
		s.notifier.Notify(ctx, domain.NotificationWarning, DemoNotificationTitle, DemoNotificationDescription)
	}

	return cloneState(state), nil
}

// Current devolve o snapshot armazenado, buscando antes quando o filtro nunca
// foi buscado ou o dado é mais antigo que o intervalo de atualização
func (s *Service) Current(ctx context.Context, filter domain.SnapshotFilter) (domain.SnapshotState, error) {
	s.mu.Lock()
	e, ok := s.entries[filterKey(filter)]
	if ok && e.hasState && s.now().Sub(e.state.FetchedAt) < s.interval {
		state := e.state
		s.mu.Unlock()
		return cloneState(state), nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx, filter)
}

// Filters devolve os filtros já consultados, em ordem estável
func (s *Service) Filters() []domain.SnapshotFilter {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.filters))
	for key := range s.filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]domain.SnapshotFilter, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.filters[key])
	}
	return out
}

func cloneState(state domain.SnapshotState) domain.SnapshotState {
	state.Snapshot = state.Snapshot.Clone()
	return state
}
