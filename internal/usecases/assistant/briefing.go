package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/pkg/utils"
)

const (
	maxListEntries = 3

	NoHighValueSales  = "No recent high-value sales"
	NoFastMovingItems = "No fast-moving product data"
	NoActiveAlerts    = "No active alerts"

	briefingDateLayout = "Monday, January 2, 2006"
)

// ResponseFormatting são as convenções de formatação pedidas ao modelo; o
// formatador de texto rico depende delas
const ResponseFormatting = `RESPONSE FORMATTING:
- Start each section with a heading wrapped in double asterisks, e.g. **Revenue Summary**
- Use "- " at the start of each line for bullet lists
- Use "1. ", "2. ", "3. " for numbered steps
- Separate sections and paragraphs with a blank line
- Highlight key figures with **double asterisks**
- Always express currency in Pakistani Rupees (Rs.)`

// SerializeContext gera o texto de contexto do negócio enviado ao modelo.
// É uma função pura: o mesmo snapshot e a mesma data geram sempre o mesmo texto.
func SerializeContext(snapshot domain.Snapshot, asOf time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "BUSINESS CONTEXT (as of %s)\n\n", asOf.Format(briefingDateLayout))

	f := snapshot.Financial
	b.WriteString("FINANCIAL OVERVIEW:\n")
	fmt.Fprintf(&b, "- Today's Revenue: %s (yesterday: %s)\n", utils.FormatCurrency(f.TodayRevenue), utils.FormatCurrency(f.YesterdayRevenue))
	fmt.Fprintf(&b, "- Monthly Revenue: %s (last month: %s)\n", utils.FormatCurrency(f.MonthRevenue), utils.FormatCurrency(f.LastMonthRevenue))
	fmt.Fprintf(&b, "- Monthly Expenses: %s\n", utils.FormatCurrency(f.MonthExpenses))
	fmt.Fprintf(&b, "- Gross Profit: %s\n", utils.FormatCurrency(f.GrossProfit))
	fmt.Fprintf(&b, "- Net Profit: %s\n", utils.FormatCurrency(f.NetProfit))
	fmt.Fprintf(&b, "- Profit Margin: %s\n", utils.FormatPercent(f.ProfitMargin))
	fmt.Fprintf(&b, "- Revenue Growth: %s (monthly: %s)\n\n", utils.FormatPercent(f.RevenueGrowth), utils.FormatPercent(f.MonthlyGrowth))

	s := snapshot.Sales
	b.WriteString("SALES PERFORMANCE:\n")
	fmt.Fprintf(&b, "- Today's Sales: %s\n", utils.FormatCount(s.TodaySales))
	fmt.Fprintf(&b, "- Weekly Sales: %s\n", utils.FormatCount(s.WeekSales))
	fmt.Fprintf(&b, "- Average Order Value: %s\n", utils.FormatCurrency(s.AvgOrderValue))
	fmt.Fprintf(&b, "- Pending Orders Value: %s\n", utils.FormatCurrency(s.PendingOrdersValue))
	fmt.Fprintf(&b, "- Top Sales: %s\n\n", joinOrPlaceholder(highValueSales(s.HighValueSales), NoHighValueSales))

	inv := snapshot.Inventory
	b.WriteString("INVENTORY STATUS:\n")
	fmt.Fprintf(&b, "- Total Inventory Value: %s\n", utils.FormatCurrency(inv.TotalInventoryValue))
	fmt.Fprintf(&b, "- Low Stock Items: %s\n", utils.FormatCount(inv.LowStockItems))
	fmt.Fprintf(&b, "- Out of Stock Items: %s\n", utils.FormatCount(inv.OutOfStockItems))
	fmt.Fprintf(&b, "- Dead Stock Value: %s\n", utils.FormatCurrency(inv.DeadStockValue))
	fmt.Fprintf(&b, "- Inventory Turnover: %.2f\n", inv.InventoryTurnover)
	fmt.Fprintf(&b, "- Fast Moving: %s\n\n", joinOrPlaceholder(fastMovingProducts(inv.FastMovingProducts), NoFastMovingItems))

	c := snapshot.Customers
	b.WriteString("CUSTOMER INSIGHTS:\n")
	fmt.Fprintf(&b, "- Total Customers: %s\n", utils.FormatCount(c.TotalCustomers))
	fmt.Fprintf(&b, "- New This Month: %s\n", utils.FormatCount(c.NewCustomersThisMonth))
	fmt.Fprintf(&b, "- Average Customer Value: %s\n", utils.FormatCurrency(c.AvgCustomerValue))
	fmt.Fprintf(&b, "- Outstanding Receivables: %s\n\n", utils.FormatCurrency(c.TotalReceivables))

	cf := snapshot.CashFlow
	b.WriteString("CASH FLOW:\n")
	fmt.Fprintf(&b, "- Monthly Inflows: %s\n", utils.FormatCurrency(cf.MonthlyInflows))
	fmt.Fprintf(&b, "- Monthly Outflows: %s\n", utils.FormatCurrency(cf.MonthlyOutflows))
	fmt.Fprintf(&b, "- Net Cash Flow: %s\n\n", utils.FormatCurrency(cf.NetCashFlow))

	b.WriteString("ALERTS:\n")
	alerts := formatAlerts(snapshot.Alerts)
	if len(alerts) == 0 {
		fmt.Fprintf(&b, "- %s\n", NoActiveAlerts)
	}
	for _, alert := range alerts {
		fmt.Fprintf(&b, "- %s\n", alert)
	}

	b.WriteString("\n")
	b.WriteString(ResponseFormatting)
	b.WriteString("\n")

	return b.String()
}

func highValueSales(sales []domain.HighValueSale) []string {
	out := make([]string, 0, maxListEntries)
	for _, sale := range truncate(sales) {
		out = append(out, fmt.Sprintf("%s from %s", utils.FormatCurrency(sale.Amount), sale.Customer))
	}
	return out
}

func fastMovingProducts(products []domain.ProductMovement) []string {
	out := make([]string, 0, maxListEntries)
	for _, p := range truncate(products) {
		out = append(out, fmt.Sprintf("%s (%s sold, %s remaining)", p.Name, utils.FormatCount(p.Sold), utils.FormatCount(p.Remaining)))
	}
	return out
}

func formatAlerts(alerts []domain.Alert) []string {
	out := make([]string, 0, maxListEntries)
	for _, a := range truncate(alerts) {
		out = append(out, fmt.Sprintf("[%s] %s: %s (Action: %s)", a.Type, a.Title, a.Message, a.Action))
	}
	return out
}

func truncate[T any](items []T) []T {
	if len(items) > maxListEntries {
		return items[:maxListEntries]
	}
	return items
}

func joinOrPlaceholder(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, ", ")
}
