package assistant

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxFallbackInsights = 6
	fallbackImpact      = "Significant business impact expected"
)

var (
	fallbackTypes = []domain.InsightType{
		domain.InsightTypeInsight,
		domain.InsightTypeRecommendation,
		domain.InsightTypeAlert,
		domain.InsightTypeOpportunity,
	}
	fallbackCategories = []string{"Financial", "Sales", "Inventory", "Customer", "Operations"}
)

// DecodeInsights é a primeira etapa: extrai o trecho entre o primeiro "[" e o
// último "]" e decodifica como lista de insights
func DecodeInsights(raw string) ([]domain.Insight, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil, &ParseError{Err: ErrNoInsightArray}
	}

	var insights []domain.Insight
	if err := json.Unmarshal([]byte(raw[start:end+1]), &insights); err != nil {
		return nil, &ParseError{Err: ErrInvalidInsightArray, Cause: err}
	}
	if len(insights) == 0 {
		return nil, &ParseError{Err: ErrInvalidInsightArray, Cause: fmt.Errorf("lista vazia")}
	}
	for i, insight := range insights {
		if err := validateInsight(insight); err != nil {
			return nil, &ParseError{Err: ErrInvalidInsightArray, Cause: fmt.Errorf("item %d: %w", i, err)}
		}
	}

	return insights, nil
}

// validateInsight exige título e conteúdo e só aceita tipos e prioridades conhecidos
func validateInsight(insight domain.Insight) error {
	if strings.TrimSpace(insight.Title) == "" || strings.TrimSpace(insight.Content) == "" {
		return fmt.Errorf("título ou conteúdo vazio")
	}

	switch insight.Type {
	case domain.InsightTypeInsight, domain.InsightTypeRecommendation, domain.InsightTypeAlert, domain.InsightTypeOpportunity:
	default:
		return fmt.Errorf("tipo desconhecido %q", insight.Type)
	}

	switch insight.Priority {
	case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
	default:
		return fmt.Errorf("prioridade desconhecida %q", insight.Priority)
	}

	return nil
}

// FallbackInsights é a segunda etapa: cria um insight por linha não vazia,
// no máximo seis, alternando tipo e categoria pelo índice
func FallbackInsights(raw string) []domain.Insight {
	insights := make([]domain.Insight, 0, maxFallbackInsights)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		i := len(insights)
		actionable := true
		insights = append(insights, domain.Insight{
			Type:       fallbackTypes[i%len(fallbackTypes)],
			Title:      fmt.Sprintf("Business Intelligence %d", i+1),
			Content:    line,
			Priority:   fallbackPriority(i),
			Category:   fallbackCategories[i%len(fallbackCategories)],
			Impact:     fallbackImpact,
			Actionable: &actionable,
		})

		if len(insights) == maxFallbackInsights {
			break
		}
	}

	return insights
}

func fallbackPriority(i int) domain.InsightPriority {
	switch {
	case i < 2:
		return domain.PriorityHigh
	case i < 4:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// ParseInsights executa a segunda etapa apenas quando a primeira falha; o
// retorno degraded indica que a lista veio do fallback
func ParseInsights(raw string) (insights []domain.Insight, degraded bool) {
	insights, err := DecodeInsights(raw)
	if err == nil {
		return insights, false
	}
	return FallbackInsights(raw), true
}
