package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/notifying"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/snapshotting"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
	"github.com/vfg2006/insights-assistant-api/pkg/utils"
)

// Textos das notificações exibidas ao usuário
const (
	InsightsReadyTitle       = "Insights Generated Successfully"
	InsightsReadyDescription = "Your business intelligence report is ready with actionable recommendations."
	InsightsFailedTitle      = "Generation Failed"
	InsightsFailedDesc       = "Unable to generate insights. Please try again."
)

// Reply é a resposta do assistente a uma pergunta
type Reply struct {
	Raw            string                `json:"raw"`
	Blocks         []domain.Block        `json:"blocks"`
	HTML           string                `json:"html,omitempty"`
	SnapshotSource domain.SnapshotSource `json:"snapshotSource"`
}

type Assistant interface {
	GenerateInsights(ctx context.Context, filter domain.SnapshotFilter, question string) (domain.InsightBatch, error)
	LatestInsights() (domain.InsightBatch, bool)
	Answer(ctx context.Context, filter domain.SnapshotFilter, question string) (Reply, error)
}

type Service struct {
	snapshots snapshotting.Snapshotter
	generator gemini.Generator
	notifier  notifying.Notifier

	mu     sync.RWMutex
	latest *domain.InsightBatch
	now    func() time.Time
}

func NewService(snapshots snapshotting.Snapshotter, generator gemini.Generator, notifier notifying.Notifier) *Service {
	return &Service{
		snapshots: snapshots,
		generator: generator,
		notifier:  notifier,
		now:       time.Now,
	}
}

// GenerateInsights gera um novo lote de insights que substitui o anterior por
// completo. Em caso de falha o lote anterior é mantido.
func (s *Service) GenerateInsights(ctx context.Context, filter domain.SnapshotFilter, question string) (domain.InsightBatch, error) {
	logger := log.ForContext(ctx).WithField("source", "insights")

	state, err := s.snapshots.Current(ctx, filter)
	if err != nil {
		return domain.InsightBatch{}, errors.Wrap(err, "obter snapshot")
	}

	prompt := BuildPrompt(SerializeContext(state.Snapshot, s.now()), question, ModeInsights)

	raw, err := s.generator.Generate(ctx, gemini.GenerationRequest{
		Prompt:          prompt,
		MaxOutputTokens: gemini.InsightsMaxOutputTokens,
	})
	if err != nil {
		logger.WithError(err).Error("Falha ao gerar insights")
		s.notifier.Notify(ctx, domain.NotificationError, InsightsFailedTitle, InsightsFailedDesc)
		return domain.InsightBatch{}, errors.Wrap(err, "gerar insights")
	}

	insights, degraded := ParseInsights(raw)
	if len(insights) == 0 {
		s.notifier.Notify(ctx, domain.NotificationError, InsightsFailedTitle, InsightsFailedDesc)
		return domain.InsightBatch{}, errors.Wrap(&gemini.GenerationError{Err: gemini.ErrEmptyResponse}, "gerar insights")
	}
	if degraded {
		logger.Warn("Resposta sem lista JSON válida, usando insights derivados das linhas")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return domain.InsightBatch{}, errors.Wrap(err, "gerar id do lote")
	}

	batch := domain.InsightBatch{
		ID:             id,
		Insights:       insights,
		Degraded:       degraded,
		SnapshotSource: state.Source,
		GeneratedAt:    s.now(),
	}

	s.mu.Lock()
	s.latest = &batch
	s.mu.Unlock()

	s.notifier.Notify(ctx, domain.NotificationSuccess, InsightsReadyTitle, InsightsReadyDescription)
	logger.Infof("Lote %s gerado com %d insights", batch.ID, len(batch.Insights))

	return copyBatch(batch), nil
}

// LatestInsights devolve o último lote gerado, se houver
func (s *Service) LatestInsights() (domain.InsightBatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return domain.InsightBatch{}, false
	}
	return copyBatch(*s.latest), true
}

// Answer responde uma pergunta livre sobre o negócio
func (s *Service) Answer(ctx context.Context, filter domain.SnapshotFilter, question string) (Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{}, ErrEmptyQuestion
	}

	state, err := s.snapshots.Current(ctx, filter)
	if err != nil {
		return Reply{}, errors.Wrap(err, "obter snapshot")
	}

	prompt := BuildPrompt(SerializeContext(state.Snapshot, s.now()), question, ModeChat)

	raw, err := s.generator.Generate(ctx, gemini.GenerationRequest{
		Prompt:          prompt,
		MaxOutputTokens: gemini.ChatMaxOutputTokens,
	})
	if err != nil {
		return Reply{}, errors.Wrap(err, "gerar resposta")
	}

	blocks := FormatRichText(raw)

	return Reply{
		Raw:            raw,
		Blocks:         blocks,
		HTML:           RenderHTML(blocks),
		SnapshotSource: state.Source,
	}, nil
}

func copyBatch(batch domain.InsightBatch) domain.InsightBatch {
	batch.Insights = append([]domain.Insight(nil), batch.Insights...)
	return batch
}
