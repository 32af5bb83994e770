package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/erp-api/internal/domain/enum"
	domainRepo "github.com/sangkips/erp-api/internal/domain/repository"
)

type metricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository creates a new metrics repository
func NewMetricsRepository(db *gorm.DB) domainRepo.MetricsRepository {
	return &metricsRepository{db: db}
}

func (r *metricsRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Revenue decimal.Decimal
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) AS revenue
		FROM sales
	`).Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}

	return row.Revenue, nil
}

func (r *metricsRepository) SalesByStatus(ctx context.Context) ([]domainRepo.StatusCount, error) {
	var results []domainRepo.StatusCount

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM sales
		GROUP BY status
		ORDER BY status
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *metricsRepository) SalesBetween(ctx context.Context, from, to time.Time) (domainRepo.PeriodSales, error) {
	var row struct {
		Revenue decimal.Decimal
		Orders  int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total), 0) AS revenue,
			COUNT(*) AS orders
		FROM sales
		WHERE date >= ? AND date < ?
	`, from, to).Scan(&row).Error
	if err != nil {
		return domainRepo.PeriodSales{}, err
	}

	return domainRepo.PeriodSales{Revenue: row.Revenue, Orders: row.Orders}, nil
}

func (r *metricsRepository) FinancialTotals(ctx context.Context) (domainRepo.FinancialTotals, error) {
	var row struct {
		Income   decimal.Decimal
		Expenses decimal.Decimal
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = ? THEN ABS(amount) ELSE 0 END), 0) AS expenses
		FROM transactions
	`, enum.TransactionTypeIncome, enum.TransactionTypeExpense).Scan(&row).Error
	if err != nil {
		return domainRepo.FinancialTotals{}, err
	}

	return domainRepo.FinancialTotals{Income: row.Income, Expenses: row.Expenses}, nil
}

func (r *metricsRepository) EntityCounts(ctx context.Context) (domainRepo.EntityCounts, error) {
	var counts domainRepo.EntityCounts

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM customers) AS customers,
			(SELECT COUNT(*) FROM inventory) AS inventory_items,
			(SELECT COUNT(*) FROM inventory WHERE quantity <= min_stock) AS low_stock_items,
			(SELECT COUNT(*) FROM employees WHERE status = ?) AS active_employees
	`, enum.EmployeeStatusActive).Scan(&counts).Error
	if err != nil {
		return domainRepo.EntityCounts{}, err
	}

	return counts, nil
}
