package domain

import "time"

// SnapshotSource indica se o snapshot veio da API ou do conjunto de demonstração
type SnapshotSource string

const (
	SnapshotSourceLive SnapshotSource = "live"
	SnapshotSourceDemo SnapshotSource = "demo"
)

// Snapshot é o resumo das métricas do negócio retornado por /dashboard/enhanced-stats.
// Campos ausentes no JSON ficam com valor zero e listas ficam nil; quem consome
// nunca deve assumir que uma seção está preenchida.
type Snapshot struct {
	Financial   FinancialMetrics   `json:"financial"`
	Sales       SalesMetrics       `json:"sales"`
	Inventory   InventoryMetrics   `json:"inventory"`
	Customers   CustomerMetrics    `json:"customers"`
	Performance PerformanceMetrics `json:"performance"`
	CashFlow    CashFlowMetrics    `json:"cashFlow"`
	Alerts      []Alert            `json:"alerts"`
}

type FinancialMetrics struct {
	TodayRevenue     float64 `json:"todayRevenue"`
	YesterdayRevenue float64 `json:"yesterdayRevenue"`
	MonthRevenue     float64 `json:"monthRevenue"`
	LastMonthRevenue float64 `json:"lastMonthRevenue"`
	MonthExpenses    float64 `json:"monthExpenses"`
	GrossProfit      float64 `json:"grossProfit"`
	NetProfit        float64 `json:"netProfit"`
	ProfitMargin     float64 `json:"profitMargin"`
	RevenueGrowth    float64 `json:"revenueGrowth"`
	MonthlyGrowth    float64 `json:"monthlyGrowth"`
}

type SalesMetrics struct {
	TodaySales         float64         `json:"todaySales"`
	WeekSales          float64         `json:"weekSales"`
	AvgOrderValue      float64         `json:"avgOrderValue"`
	PendingOrdersValue float64         `json:"pendingOrdersValue"`
	PaymentMethods     []PaymentMethod `json:"paymentMethods"`
	HighValueSales     []HighValueSale `json:"highValueSales"`
}

type PaymentMethod struct {
	Method string  `json:"method"`
	Count  float64 `json:"count"`
	Amount float64 `json:"amount"`
}

type HighValueSale struct {
	OrderNumber string  `json:"orderNumber"`
	Amount      float64 `json:"amount"`
	Customer    string  `json:"customer"`
	Date        string  `json:"date"`
}

type InventoryMetrics struct {
	TotalInventoryValue  float64           `json:"totalInventoryValue"`
	RetailInventoryValue float64           `json:"retailInventoryValue"`
	LowStockItems        float64           `json:"lowStockItems"`
	OutOfStockItems      float64           `json:"outOfStockItems"`
	OverstockItems       float64           `json:"overstockItems"`
	DeadStockValue       float64           `json:"deadStockValue"`
	InventoryTurnover    float64           `json:"inventoryTurnover"`
	FastMovingProducts   []ProductMovement `json:"fastMovingProducts"`
}

type ProductMovement struct {
	Name      string  `json:"name"`
	Sold      float64 `json:"sold"`
	Remaining float64 `json:"remaining"`
}

type CustomerMetrics struct {
	TotalCustomers        float64        `json:"totalCustomers"`
	NewCustomersThisMonth float64        `json:"newCustomersThisMonth"`
	AvgCustomerValue      float64        `json:"avgCustomerValue"`
	TotalReceivables      float64        `json:"totalReceivables"`
	CustomerTypes         []CustomerType `json:"customerTypes"`
}

type CustomerType struct {
	Type  string  `json:"type"`
	Count float64 `json:"count"`
}

type PerformanceMetrics struct {
	DailyAvgRevenue     float64               `json:"dailyAvgRevenue"`
	DailyAvgOrders      float64               `json:"dailyAvgOrders"`
	CategoryPerformance []CategoryPerformance `json:"categoryPerformance"`
}

type CategoryPerformance struct {
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
	UnitsSold float64 `json:"unitsSold"`
}

type CashFlowMetrics struct {
	MonthlyInflows  float64 `json:"monthlyInflows"`
	MonthlyOutflows float64 `json:"monthlyOutflows"`
	NetCashFlow     float64 `json:"netCashFlow"`
}

type Alert struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// SnapshotFilter são os seletores de período/ano da tela de relatórios
type SnapshotFilter struct {
	Period string `json:"period,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// SnapshotState é o snapshot armazenado junto com sua origem
type SnapshotState struct {
	Snapshot  Snapshot       `json:"data"`
	Source    SnapshotSource `json:"source"`
	Filter    SnapshotFilter `json:"filter"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// IsDemo indica que o usuário deve ser avisado de que os dados são de demonstração
func (s SnapshotState) IsDemo() bool {
	return s.Source == SnapshotSourceDemo
}

// Clone devolve uma cópia com listas próprias, para leitura fora do cache
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Sales.PaymentMethods = append([]PaymentMethod(nil), s.Sales.PaymentMethods...)
	c.Sales.HighValueSales = append([]HighValueSale(nil), s.Sales.HighValueSales...)
	c.Inventory.FastMovingProducts = append([]ProductMovement(nil), s.Inventory.FastMovingProducts...)
	c.Customers.CustomerTypes = append([]CustomerType(nil), s.Customers.CustomerTypes...)
	c.Performance.CategoryPerformance = append([]CategoryPerformance(nil), s.Performance.CategoryPerformance...)
	c.Alerts = append([]Alert(nil), s.Alerts...)
	return c
}
