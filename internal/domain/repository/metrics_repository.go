package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/enum"
)

// StatusCount is the number of sales orders in one status
type StatusCount struct {
	Status enum.SaleStatus
	Count  int64
}

// PeriodSales aggregates the orders dated within a period
type PeriodSales struct {
	Revenue decimal.Decimal
	Orders  int64
}

// FinancialTotals aggregates the ledger. Expenses is the sum of absolute amounts.
type FinancialTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// EntityCounts holds the document counts shown on the dashboard
type EntityCounts struct {
	Customers       int64
	InventoryItems  int64
	LowStockItems   int64
	ActiveEmployees int64
}

// MetricsRepository defines the aggregation queries behind the dashboards.
// Each call is an independent read; results of separate calls are not a
// consistent point-in-time view.
type MetricsRepository interface {
	// TotalRevenue sums the total of every sales order
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// SalesByStatus counts orders per status. Statuses without orders are omitted.
	SalesByStatus(ctx context.Context) ([]StatusCount, error)

	// SalesBetween aggregates orders dated in [from, to)
	SalesBetween(ctx context.Context, from, to time.Time) (PeriodSales, error)

	// FinancialTotals sums income and expense transactions
	FinancialTotals(ctx context.Context) (FinancialTotals, error)

	// EntityCounts counts customers, inventory items, low-stock items and active employees
	EntityCounts(ctx context.Context) (EntityCounts, error)
}
