package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

func TestSyntheticCashFlow_SameSeedSameSeries(t *testing.T) {
	base := domain.CashFlowMetrics{MonthlyInflows: 2850000, MonthlyOutflows: 1700000, NetCashFlow: 1150000}

	first := SyntheticCashFlow(base, 7, CashFlowMonths)
	second := SyntheticCashFlow(base, 7, CashFlowMonths)
	other := SyntheticCashFlow(base, 8, CashFlowMonths)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first.Points, other.Points)
	assert.True(t, first.Synthetic)
	assert.Equal(t, int64(7), first.Seed)
}

func TestSyntheticCashFlow_Bounds(t *testing.T) {
	base := domain.CashFlowMetrics{MonthlyInflows: 100000, MonthlyOutflows: 50000, NetCashFlow: 50000}

	series := SyntheticCashFlow(base, DefaultSeed, CashFlowMonths)

	require.Len(t, series.Points, len(CashFlowMonths))
	for i, p := range series.Points {
		assert.Equal(t, CashFlowMonths[i], p.Month)
		assert.InDelta(t, base.MonthlyInflows, p.Inflow, inflowJitter)
		assert.InDelta(t, base.MonthlyOutflows, p.Outflow, outflowJitter)
		assert.InDelta(t, base.NetCashFlow, p.Net, netJitter)
	}
}

func TestSyntheticCashFlow_NoMonths(t *testing.T) {
	series := SyntheticCashFlow(domain.CashFlowMetrics{}, 1, nil)
	assert.Empty(t, series.Points)
	assert.True(t, series.Synthetic)
}
