package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/enum"
	"github.com/sangkips/erp-api/internal/domain/repository"
)

// DashboardService computes the sales, financial and overview metrics.
// Each figure comes from its own query, so a response assembled while
// writes are in flight is not a single point-in-time view.
type DashboardService struct {
	metricsRepo repository.MetricsRepository
	now         Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(metricsRepo repository.MetricsRepository, now Clock) *DashboardService {
	return &DashboardService{metricsRepo: metricsRepo, now: now}
}

// SalesMetrics summarizes every sales order
type SalesMetrics struct {
	TotalRevenue   decimal.Decimal  `json:"totalRevenue"`
	TotalOrders    int64            `json:"totalOrders"`
	CompletedSales int64            `json:"completedSales"`
	PendingSales   int64            `json:"pendingSales"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
}

// FinancialMetrics summarizes the ledger
type FinancialMetrics struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
}

// DashboardOverview holds the counters shown on the landing dashboard
type DashboardOverview struct {
	TotalCustomers      int64           `json:"totalCustomers"`
	TotalInventoryItems int64           `json:"totalInventoryItems"`
	MonthlySales        decimal.Decimal `json:"monthlySales"`
	MonthlyOrders       int64           `json:"monthlyOrders"`
	ActiveEmployees     int64           `json:"activeEmployees"`
	LowStockItems       int64           `json:"lowStockItems"`
	PendingOrders       int64           `json:"pendingOrders"`
}

// GetSalesMetrics returns revenue and order counts by status
func (s *DashboardService) GetSalesMetrics(ctx context.Context) (*SalesMetrics, error) {
	revenue, err := s.metricsRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.ordersByStatus(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &SalesMetrics{
		TotalRevenue:   revenue,
		CompletedSales: byStatus[string(enum.SaleStatusCompleted)],
		PendingSales:   byStatus[string(enum.SaleStatusPending)],
		OrdersByStatus: byStatus,
	}
	for _, count := range byStatus {
		metrics.TotalOrders += count
	}
	return metrics, nil
}

// GetFinancialMetrics returns income, expenses and the resulting balance
func (s *DashboardService) GetFinancialMetrics(ctx context.Context) (*FinancialMetrics, error) {
	totals, err := s.metricsRepo.FinancialTotals(ctx)
	if err != nil {
		return nil, err
	}

	net := totals.Income.Sub(totals.Expenses)
	return &FinancialMetrics{
		TotalIncome:    totals.Income,
		TotalExpenses:  totals.Expenses,
		NetProfit:      net,
		AccountBalance: net,
	}, nil
}

// GetOverview returns the dashboard counters. Monthly figures cover the
// calendar month containing now.
func (s *DashboardService) GetOverview(ctx context.Context) (*DashboardOverview, error) {
	counts, err := s.metricsRepo.EntityCounts(ctx)
	if err != nil {
		return nil, err
	}

	from, to := monthBounds(s.now())
	monthly, err := s.metricsRepo.SalesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.ordersByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		TotalCustomers:      counts.Customers,
		TotalInventoryItems: counts.InventoryItems,
		MonthlySales:        monthly.Revenue,
		MonthlyOrders:       monthly.Orders,
		ActiveEmployees:     counts.ActiveEmployees,
		LowStockItems:       counts.LowStockItems,
		PendingOrders:       byStatus[string(enum.SaleStatusPending)],
	}, nil
}

// ordersByStatus reports a count for every status, zero included
func (s *DashboardService) ordersByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := s.metricsRepo.SalesByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(enum.SaleStatuses()))
	for _, status := range enum.SaleStatuses() {
		byStatus[string(status)] = 0
	}
	for _, row := range rows {
		byStatus[string(row.Status)] += row.Count
	}
	return byStatus, nil
}

// monthBounds returns the first instant of now's month and of the next one
func monthBounds(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 1, 0)
}
