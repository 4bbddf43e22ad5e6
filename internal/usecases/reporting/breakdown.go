package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

// CategoryBreakdown calcula a participação de cada categoria na receita.
// As cores vêm da paleta recebida, repetindo quando há mais categorias que cores.
func CategoryBreakdown(categories []domain.CategoryPerformance, palette []string) ([]domain.CategorySlice, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(decimal.NewFromFloat(c.Revenue))
	}

	slices := make([]domain.CategorySlice, 0, len(categories))
	for i, c := range categories {
		slices = append(slices, domain.CategorySlice{
			Name:       c.Category,
			Revenue:    c.Revenue,
			Percentage: percentage(decimal.NewFromFloat(c.Revenue), total),
			Color:      palette[i%len(palette)],
		})
	}

	return slices, nil
}

func percentage(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(part.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}
