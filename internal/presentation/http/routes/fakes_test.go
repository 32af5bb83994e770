package routes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/entity"
	"github.com/sangkips/erp-api/internal/domain/enum"
	"github.com/sangkips/erp-api/internal/domain/repository"
)

// table is an in-memory stand-in for one postgres table
type table[T any] struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]T
	id     func(*T) *uuid.UUID
	unique map[string]func(T) string
}

func newTable[T any](id func(*T) *uuid.UUID, unique map[string]func(T) string) *table[T] {
	return &table[T]{rows: map[uuid.UUID]T{}, id: id, unique: unique}
}

func (t *table[T]) put(row *T, create bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if create && *t.id(row) == uuid.Nil {
		*t.id(row) = uuid.New()
	}
	self := *t.id(row)
	for field, key := range t.unique {
		k := key(*row)
		if k == "" {
			continue
		}
		for otherID, other := range t.rows {
			if otherID != self && key(other) == k {
				return &repository.DuplicateError{Field: field, Constraint: "uq_" + field}
			}
		}
	}
	t.rows[self] = *row
	return nil
}

func (t *table[T]) get(id uuid.UUID) *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	if row, ok := t.rows[id]; ok {
		return &row
	}
	return nil
}

func (t *table[T]) remove(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, id)
}

func (t *table[T]) list(less func(a, b T) bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

type customerRepo struct{ *table[entity.Customer] }

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error { return r.put(c, true) }
func (r customerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.get(id), nil
}
func (r customerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range r.list(func(a, b entity.Customer) bool { return false }) {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, nil
}
func (r customerRepo) Update(_ context.Context, c *entity.Customer) error { return r.put(c, false) }
func (r customerRepo) Delete(_ context.Context, id uuid.UUID) error     { r.remove(id); return nil }
func (r customerRepo) List(_ context.Context) ([]entity.Customer, error) {
	return r.list(func(a, b entity.Customer) bool { return a.CreatedDate.After(b.CreatedDate) }), nil
}

type inventoryRepo struct{ *table[entity.Inventory] }

func (r inventoryRepo) Create(_ context.Context, i *entity.Inventory) error { return r.put(i, true) }
func (r inventoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Inventory, error) {
	return r.get(id), nil
}
func (r inventoryRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Inventory, error) {
	out := map[uuid.UUID]entity.Inventory{}
	for _, id := range ids {
		if item := r.get(id); item != nil {
			out[id] = *item
		}
	}
	return out, nil
}
func (r inventoryRepo) Update(_ context.Context, i *entity.Inventory) error { return r.put(i, false) }
func (r inventoryRepo) Delete(_ context.Context, id uuid.UUID) error      { r.remove(id); return nil }
func (r inventoryRepo) List(_ context.Context) ([]entity.Inventory, error) {
	return r.list(func(a, b entity.Inventory) bool { return a.LastUpdated.After(b.LastUpdated) }), nil
}
func (r inventoryRepo) ListLowStock(ctx context.Context) ([]entity.Inventory, error) {
	all, _ := r.List(ctx)
	var out []entity.Inventory
	for _, item := range all {
		if item.Quantity <= item.MinStock {
			out = append(out, item)
		}
	}
	return out, nil
}

type employeeRepo struct{ *table[entity.Employee] }

func (r employeeRepo) Create(_ context.Context, e *entity.Employee) error { return r.put(e, true) }
func (r employeeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Employee, error) {
	return r.get(id), nil
}
func (r employeeRepo) Update(_ context.Context, e *entity.Employee) error { return r.put(e, false) }
func (r employeeRepo) Delete(_ context.Context, id uuid.UUID) error     { r.remove(id); return nil }
func (r employeeRepo) List(_ context.Context) ([]entity.Employee, error) {
	return r.list(func(a, b entity.Employee) bool { return a.HireDate.After(b.HireDate) }), nil
}
func (r employeeRepo) Count(ctx context.Context) (int64, error) {
	all, _ := r.List(ctx)
	return int64(len(all)), nil
}

type transactionRepo struct{ *table[entity.Transaction] }

func (r transactionRepo) Create(_ context.Context, t *entity.Transaction) error { return r.put(t, true) }
func (r transactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.get(id), nil
}
func (r transactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	return r.put(t, false)
}
func (r transactionRepo) Delete(_ context.Context, id uuid.UUID) error { r.remove(id); return nil }
func (r transactionRepo) List(_ context.Context) ([]entity.Transaction, error) {
	return r.list(func(a, b entity.Transaction) bool { return a.Date.After(b.Date) }), nil
}

type salesRepo struct{ *table[entity.Sale] }

func (r salesRepo) Create(_ context.Context, s *entity.Sale) error {
	s.RecomputeLineTotals()
	return r.put(s, true)
}
func (r salesRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.get(id), nil
}
func (r salesRepo) Update(_ context.Context, s *entity.Sale) error {
	s.RecomputeLineTotals()
	return r.put(s, false)
}
func (r salesRepo) Delete(_ context.Context, id uuid.UUID) error { r.remove(id); return nil }
func (r salesRepo) List(_ context.Context) ([]entity.Sale, error) {
	return r.list(func(a, b entity.Sale) bool { return a.Date.After(b.Date) }), nil
}
func (r salesRepo) Count(ctx context.Context) (int64, error) {
	all, _ := r.List(ctx)
	return int64(len(all)), nil
}

// metricsRepo computes the aggregates over the other fakes
type metricsRepo struct {
	sales     salesRepo
	inventory inventoryRepo
	customers customerRepo
	ledger    transactionRepo
	staff     employeeRepo
}

func (m metricsRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	sales, _ := m.sales.List(ctx)
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total, nil
}

func (m metricsRepo) SalesByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	sales, _ := m.sales.List(ctx)
	counts := map[enum.SaleStatus]int64{}
	for _, s := range sales {
		counts[s.Status]++
	}
	var out []repository.StatusCount
	for status, n := range counts {
		out = append(out, repository.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func (m metricsRepo) SalesBetween(ctx context.Context, from, to time.Time) (repository.PeriodSales, error) {
	sales, _ := m.sales.List(ctx)
	var period repository.PeriodSales
	for _, s := range sales {
		if !s.Date.Before(from) && s.Date.Before(to) {
			period.Revenue = period.Revenue.Add(s.Total)
			period.Orders++
		}
	}
	return period, nil
}

func (m metricsRepo) FinancialTotals(ctx context.Context) (repository.FinancialTotals, error) {
	txs, _ := m.ledger.List(ctx)
	var totals repository.FinancialTotals
	for _, tx := range txs {
		if tx.Type == enum.TransactionTypeIncome {
			totals.Income = totals.Income.Add(tx.Amount)
		} else {
			totals.Expenses = totals.Expenses.Add(tx.Amount.Abs())
		}
	}
	return totals, nil
}

func (m metricsRepo) EntityCounts(ctx context.Context) (repository.EntityCounts, error) {
	customers, _ := m.customers.List(ctx)
	items, _ := m.inventory.List(ctx)
	low, _ := m.inventory.ListLowStock(ctx)
	staff, _ := m.staff.List(ctx)
	counts := repository.EntityCounts{
		Customers:      int64(len(customers)),
		InventoryItems: int64(len(items)),
		LowStockItems:  int64(len(low)),
	}
	for _, e := range staff {
		if e.Status == enum.EmployeeStatusActive {
			counts.ActiveEmployees++
		}
	}
	return counts, nil
}

type idempotencyRepo struct {
	mu   sync.Mutex
	keys map[string]entity.IdempotencyKey
}

func newIdempotencyRepo() *idempotencyRepo {
	return &idempotencyRepo{keys: map[string]entity.IdempotencyKey{}}
}

func (r *idempotencyRepo) Get(_ context.Context, key, principal, endpoint string) (*entity.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if k, ok := r.keys[key+"|"+principal+"|"+endpoint]; ok {
		return &k, nil
	}
	return nil, nil
}

func (r *idempotencyRepo) Save(_ context.Context, k *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[k.Key+"|"+k.Principal+"|"+k.Endpoint] = *k
	return nil
}

func (r *idempotencyRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, k := range r.keys {
		if k.IsExpired(now) {
			delete(r.keys, id)
			n++
		}
	}
	return n, nil
}
