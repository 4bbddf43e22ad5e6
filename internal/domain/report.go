package domain

import "time"

// CategorySlice é uma fatia do gráfico de participação por categoria
type CategorySlice struct {
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Percentage int     `json:"percentage"`
	Color      string  `json:"color"`
}

// CashFlowPoint é um ponto da série de fluxo de caixa
type CashFlowPoint struct {
	Month   string  `json:"month"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Net     float64 `json:"net"`
}

// CashFlowSeries marca explicitamente quando os pontos são sintéticos
type CashFlowSeries struct {
	Points    []CashFlowPoint `json:"points"`
	Synthetic bool            `json:"synthetic"`
	Seed      int64           `json:"seed"`
}

type ReportFinancial struct {
	Revenue      float64 `json:"revenue"`
	Expenses     float64 `json:"expenses"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

type ReportSales struct {
	TotalSales    float64 `json:"totalSales"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

type ReportCustomers struct {
	TotalCustomers   float64 `json:"totalCustomers"`
	NewCustomers     float64 `json:"newCustomers"`
	AvgCustomerValue float64 `json:"avgCustomerValue"`
}

// Report são os dados usados na exportação de relatórios
type Report struct {
	Title          string          `json:"title"`
	Period         string          `json:"period"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	SnapshotSource SnapshotSource  `json:"snapshotSource"`
	Financial      ReportFinancial `json:"financial"`
	Sales          ReportSales     `json:"sales"`
	Customers      ReportCustomers `json:"customers"`
	Categories     []CategorySlice `json:"categoryData"`
	CashFlow       *CashFlowSeries `json:"cashFlow,omitempty"`
}
