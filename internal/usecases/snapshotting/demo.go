package snapshotting

import "github.com/vfg2006/insights-assistant-api/internal/domain"

// DemoSnapshot é o conjunto fixo exibido quando a API do dashboard falha.
// Listas sem dados ficam nil para coincidir com o que Clone produz.
func DemoSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Financial: domain.FinancialMetrics{
			TodayRevenue:     125000,
			YesterdayRevenue: 118000,
			MonthRevenue:     2850000,
			LastMonthRevenue: 2650000,
			MonthExpenses:    850000,
			GrossProfit:      2000000,
			NetProfit:        1150000,
			ProfitMargin:     40.35,
			RevenueGrowth:    5.93,
			MonthlyGrowth:    7.55,
		},
		Sales: domain.SalesMetrics{
			TodaySales:         25,
			WeekSales:          185,
			AvgOrderValue:      5000,
			PendingOrdersValue: 125000,
			PaymentMethods: []domain.PaymentMethod{
				{Method: "cash", Count: 15, Amount: 75000},
				{Method: "bank_transfer", Count: 8, Amount: 40000},
				{Method: "credit", Count: 2, Amount: 10000},
			},
		},
		Inventory: domain.InventoryMetrics{
			TotalInventoryValue:  1850000,
			RetailInventoryValue: 2750000,
			LowStockItems:        15,
			OutOfStockItems:      3,
			OverstockItems:       8,
			DeadStockValue:       125000,
			InventoryTurnover:    1.49,
		},
		Customers: domain.CustomerMetrics{
			TotalCustomers:        295,
			NewCustomersThisMonth: 18,
			AvgCustomerValue:      185000,
			TotalReceivables:      125000,
			CustomerTypes: []domain.CustomerType{
				{Type: "business", Count: 180},
				{Type: "individual", Count: 115},
			},
		},
		Performance: domain.PerformanceMetrics{
			DailyAvgRevenue: 95000,
			DailyAvgOrders:  19,
			CategoryPerformance: []domain.CategoryPerformance{
				{Category: "Taj Sheets", Revenue: 125000, UnitsSold: 250},
				{Category: "UV Sheets", Revenue: 85000, UnitsSold: 170},
				{Category: "Test Category", Revenue: 65000, UnitsSold: 130},
				{Category: "Hardware", Revenue: 35000, UnitsSold: 70},
			},
		},
		CashFlow: domain.CashFlowMetrics{
			MonthlyInflows:  2850000,
			MonthlyOutflows: 1700000,
			NetCashFlow:     1150000,
		},
	}
}
