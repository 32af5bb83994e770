package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/entity"
	"github.com/sangkips/erp-api/internal/domain/repository"
	"github.com/sangkips/erp-api/internal/domain/schema"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

var testValidator = schema.New()

func ptr[T any](v T) *T { return &v }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// memStore is a minimal in-memory table keyed by id with unique columns
type memStore[T any] struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]T
	id     func(*T) *uuid.UUID
	unique map[string]func(T) string // field -> key extractor; "" keys are ignored
}

func newMemStore[T any](id func(*T) *uuid.UUID, unique map[string]func(T) string) *memStore[T] {
	return &memStore[T]{rows: map[uuid.UUID]T{}, id: id, unique: unique}
}

func (m *memStore[T]) conflict(row T) error {
	self := *m.id(&row)
	for field, key := range m.unique {
		k := key(row)
		if k == "" {
			continue
		}
		for otherID, other := range m.rows {
			if otherID != self && key(other) == k {
				return &repository.DuplicateError{Field: field, Constraint: "uq_" + field}
			}
		}
	}
	return nil
}

func (m *memStore[T]) create(row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if *m.id(row) == uuid.Nil {
		*m.id(row) = uuid.New()
	}
	if err := m.conflict(*row); err != nil {
		return err
	}
	m.rows[*m.id(row)] = *row
	return nil
}

func (m *memStore[T]) update(row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.conflict(*row); err != nil {
		return err
	}
	m.rows[*m.id(row)] = *row
	return nil
}

func (m *memStore[T]) get(id uuid.UUID) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil
	}
	return &row
}

func (m *memStore[T]) remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
}

func (m *memStore[T]) all(less func(a, b T) bool) []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

type fakeCustomerRepo struct {
	*memStore[entity.Customer]
	hideEmails bool // makes GetByEmail miss so the unique index path is exercised
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{memStore: newMemStore(
		func(c *entity.Customer) *uuid.UUID { return &c.ID },
		map[string]func(entity.Customer) string{"email": func(c entity.Customer) string { return c.Email }},
	)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error { return r.create(c) }
func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.get(id), nil
}
func (r *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	if r.hideEmails {
		return nil, nil
	}
	for _, c := range r.all(func(a, b entity.Customer) bool { return a.Name < b.Name }) {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error { return r.update(c) }
func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error     { r.remove(id); return nil }
func (r *fakeCustomerRepo) List(_ context.Context) ([]entity.Customer, error) {
	return r.all(func(a, b entity.Customer) bool { return a.CreatedDate.After(b.CreatedDate) }), nil
}

type fakeInventoryRepo struct {
	*memStore[entity.Inventory]
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{newMemStore(
		func(i *entity.Inventory) *uuid.UUID { return &i.ID },
		map[string]func(entity.Inventory) string{"sku": func(i entity.Inventory) string { return i.SKU }},
	)}
}

func (r *fakeInventoryRepo) Create(_ context.Context, i *entity.Inventory) error { return r.create(i) }
func (r *fakeInventoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Inventory, error) {
	return r.get(id), nil
}
func (r *fakeInventoryRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Inventory, error) {
	out := map[uuid.UUID]entity.Inventory{}
	for _, id := range ids {
		if item := r.get(id); item != nil {
			out[id] = *item
		}
	}
	return out, nil
}
func (r *fakeInventoryRepo) Update(_ context.Context, i *entity.Inventory) error { return r.update(i) }
func (r *fakeInventoryRepo) Delete(_ context.Context, id uuid.UUID) error      { r.remove(id); return nil }
func (r *fakeInventoryRepo) List(_ context.Context) ([]entity.Inventory, error) {
	return r.all(func(a, b entity.Inventory) bool { return a.LastUpdated.After(b.LastUpdated) }), nil
}
func (r *fakeInventoryRepo) ListLowStock(_ context.Context) ([]entity.Inventory, error) {
	var out []entity.Inventory
	for _, item := range r.all(func(a, b entity.Inventory) bool { return a.Quantity < b.Quantity }) {
		if item.Quantity <= item.MinStock {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	*memStore[entity.Employee]
	countOffset int64 // simulates a concurrent writer that already used the next id
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{memStore: newMemStore(
		func(e *entity.Employee) *uuid.UUID { return &e.ID },
		map[string]func(entity.Employee) string{
			"employeeId": func(e entity.Employee) string { return e.EmployeeID },
			"email":      func(e entity.Employee) string { return e.Email },
		},
	)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error { return r.create(e) }
func (r *fakeEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Employee, error) {
	return r.get(id), nil
}
func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error { return r.update(e) }
func (r *fakeEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error     { r.remove(id); return nil }
func (r *fakeEmployeeRepo) List(_ context.Context) ([]entity.Employee, error) {
	return r.all(func(a, b entity.Employee) bool { return a.HireDate.After(b.HireDate) }), nil
}
func (r *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.all(func(a, b entity.Employee) bool { return false }))) - r.countOffset, nil
}

type fakeTransactionRepo struct {
	*memStore[entity.Transaction]
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{newMemStore(
		func(t *entity.Transaction) *uuid.UUID { return &t.ID },
		map[string]func(entity.Transaction) string{"reference": func(t entity.Transaction) string {
			if t.Reference == nil {
				return ""
			}
			return *t.Reference
		}},
	)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	return r.create(t)
}
func (r *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.get(id), nil
}
func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	return r.update(t)
}
func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error { r.remove(id); return nil }
func (r *fakeTransactionRepo) List(_ context.Context) ([]entity.Transaction, error) {
	return r.all(func(a, b entity.Transaction) bool { return a.Date.After(b.Date) }), nil
}

type fakeSalesRepo struct {
	*memStore[entity.Sale]
}

func newFakeSalesRepo() *fakeSalesRepo {
	return &fakeSalesRepo{newMemStore(
		func(s *entity.Sale) *uuid.UUID { return &s.ID },
		map[string]func(entity.Sale) string{"orderNumber": func(s entity.Sale) string { return s.OrderNumber }},
	)}
}

// Create and Update run the same hook the gorm model runs before saving
func (r *fakeSalesRepo) Create(_ context.Context, s *entity.Sale) error {
	s.RecomputeLineTotals()
	return r.create(s)
}
func (r *fakeSalesRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale := r.get(id)
	if sale != nil {
		sale.Items = append([]entity.SaleItem(nil), sale.Items...)
	}
	return sale, nil
}
func (r *fakeSalesRepo) Update(_ context.Context, s *entity.Sale) error {
	s.RecomputeLineTotals()
	return r.update(s)
}
func (r *fakeSalesRepo) Delete(_ context.Context, id uuid.UUID) error { r.remove(id); return nil }
func (r *fakeSalesRepo) List(_ context.Context) ([]entity.Sale, error) {
	return r.all(func(a, b entity.Sale) bool { return a.Date.After(b.Date) }), nil
}
func (r *fakeSalesRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.all(func(a, b entity.Sale) bool { return false }))), nil
}

type fakeMetricsRepo struct {
	revenue  decimal.Decimal
	byStatus []repository.StatusCount
	period   repository.PeriodSales
	from, to time.Time
	totals   repository.FinancialTotals
	counts   repository.EntityCounts
	err      error
}

func (f *fakeMetricsRepo) TotalRevenue(context.Context) (decimal.Decimal, error) {
	return f.revenue, f.err
}
func (f *fakeMetricsRepo) SalesByStatus(context.Context) ([]repository.StatusCount, error) {
	return f.byStatus, f.err
}
func (f *fakeMetricsRepo) SalesBetween(_ context.Context, from, to time.Time) (repository.PeriodSales, error) {
	f.from, f.to = from, to
	return f.period, f.err
}
func (f *fakeMetricsRepo) FinancialTotals(context.Context) (repository.FinancialTotals, error) {
	return f.totals, f.err
}
func (f *fakeMetricsRepo) EntityCounts(context.Context) (repository.EntityCounts, error) {
	return f.counts, f.err
}
