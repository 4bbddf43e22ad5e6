package reporting

import (
	"math/rand"

	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/pkg/utils"
)

// Amplitude do ruído aplicado sobre os valores mensais do snapshot
const (
	inflowJitter  = 25000
	outflowJitter = 15000
	netJitter     = 10000
)

// DefaultSeed é usada quando a requisição não informa uma semente
const DefaultSeed int64 = 42

// CashFlowMonths são os rótulos da série exibida no relatório
var CashFlowMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// SyntheticCashFlow gera uma série ilustrativa a partir dos totais do mês.
// A mesma semente sempre produz a mesma série; valores com duas casas decimais.
func SyntheticCashFlow(base domain.CashFlowMetrics, seed int64, months []string) domain.CashFlowSeries {
	rng := rand.New(rand.NewSource(seed))

	points := make([]domain.CashFlowPoint, 0, len(months))
	for _, month := range months {
		points = append(points, domain.CashFlowPoint{
			Month:   month,
			Inflow:  utils.RoundToCents(base.MonthlyInflows + jitter(rng, inflowJitter)),
			Outflow: utils.RoundToCents(base.MonthlyOutflows + jitter(rng, outflowJitter)),
			Net:     utils.RoundToCents(base.NetCashFlow + jitter(rng, netJitter)),
		})
	}

	return domain.CashFlowSeries{
		Points:    points,
		Synthetic: true,
		Seed:      seed,
	}
}

// jitter devolve um valor uniforme em [-amplitude, amplitude)
func jitter(rng *rand.Rand, amplitude float64) float64 {
	return rng.Float64()*2*amplitude - amplitude
}
