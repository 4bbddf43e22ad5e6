package reporting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/snapshotting"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultReportType = "business"
	DefaultPeriod     = "monthly"
)

type Reporter interface {
	Categories(ctx context.Context, filter domain.SnapshotFilter) ([]domain.CategorySlice, error)
	CashFlow(ctx context.Context, filter domain.SnapshotFilter, seed int64) (domain.CashFlowSeries, error)
	Export(ctx context.Context, filter domain.SnapshotFilter, reportType, period string) (domain.Report, error)
}

type Service struct {
	snapshots snapshotting.Snapshotter
	palette   []string
	demoMode  bool
	now       func() time.Time
}

func NewService(snapshots snapshotting.Snapshotter, palette []string, demoMode bool) *Service {
	return &Service{
		snapshots: snapshots,
		palette:   append([]string(nil), palette...),
		demoMode:  demoMode,
		now:       time.Now,
	}
}

func (s *Service) Categories(ctx context.Context, filter domain.SnapshotFilter) ([]domain.CategorySlice, error) {
	state, err := s.snapshots.Current(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "obter snapshot")
	}

	return CategoryBreakdown(state.Snapshot.Performance.CategoryPerformance, s.palette)
}

// CashFlow só responde em modo demonstração: a série não vem de dados reais
func (s *Service) CashFlow(ctx context.Context, filter domain.SnapshotFilter, seed int64) (domain.CashFlowSeries, error) {
	if !s.demoMode {
		return domain.CashFlowSeries{}, ErrDemoModeOnly
	}

	state, err := s.snapshots.Current(ctx, filter)
	if err != nil {
		return domain.CashFlowSeries{}, errors.Wrap(err, "obter snapshot")
	}

	return SyntheticCashFlow(state.Snapshot.CashFlow, seed, CashFlowMonths), nil
}

// Export monta os dados do relatório exportável. A série de fluxo de caixa
// só é incluída em modo demonstração.
func (s *Service) Export(ctx context.Context, filter domain.SnapshotFilter, reportType, period string) (domain.Report, error) {
	state, err := s.snapshots.Current(ctx, filter)
	if err != nil {
		return domain.Report{}, errors.Wrap(err, "obter snapshot")
	}

	categories, err := CategoryBreakdown(state.Snapshot.Performance.CategoryPerformance, s.palette)
	if err != nil {
		return domain.Report{}, err
	}

	snapshot := state.Snapshot
	report := domain.Report{
		Title:          titleCase(withDefault(reportType, DefaultReportType)) + " Report",
		Period:         titleCase(withDefault(period, DefaultPeriod)),
		GeneratedAt:    s.now(),
		SnapshotSource: state.Source,
		Financial: domain.ReportFinancial{
			Revenue:      snapshot.Financial.MonthRevenue,
			Expenses:     snapshot.Financial.MonthExpenses,
			Profit:       snapshot.Financial.NetProfit,
			ProfitMargin: snapshot.Financial.ProfitMargin,
		},
		Sales: domain.ReportSales{
			TotalSales:    snapshot.Sales.TodaySales,
			AvgOrderValue: snapshot.Sales.AvgOrderValue,
		},
		Customers: domain.ReportCustomers{
			TotalCustomers:   snapshot.Customers.TotalCustomers,
			NewCustomers:     snapshot.Customers.NewCustomersThisMonth,
			AvgCustomerValue: snapshot.Customers.AvgCustomerValue,
		},
		Categories: categories,
	}

	if s.demoMode {
		series := SyntheticCashFlow(snapshot.CashFlow, DefaultSeed, CashFlowMonths)
		report.CashFlow = &series
	}

	log.ForContext(ctx).WithField("source", string(state.Source)).Infof("Relatório %q exportado", report.Title)

	return report, nil
}

func withDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func titleCase(v string) string {
	return cases.Title(language.English).String(v)
}
