package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/erp-api/internal/domain/enum"
)

func TestCustomerNormalizeAndDefaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := Customer{Name: "  Acme ", Email: " A@X.com ", Phone: "555"}
	c.Normalize()
	c.ApplyDefaults(now)

	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "a@x.com", c.Email)
	assert.Equal(t, enum.CustomerStatusActive, c.Status)
	assert.Equal(t, now, c.CreatedDate)
	assert.True(t, c.TotalSpent.IsZero())
}

func TestInventoryDefaultsAndLowStock(t *testing.T) {
	now := time.Now()
	item := Inventory{Name: "Widget", SKU: " wg001", Category: "Parts", Quantity: 5, MinStock: 10, MaxStock: 100}
	item.Normalize()
	item.ApplyDefaults(now, false, false)

	assert.Equal(t, "WG001", item.SKU)
	assert.Equal(t, 10, item.ReorderPoint)
	assert.True(t, item.IsActive)
	assert.Equal(t, now, item.LastUpdated)
	assert.True(t, item.IsLowStock())

	item.ReorderPoint = 4
	assert.False(t, item.IsLowStock())
	item.Quantity = 4
	assert.True(t, item.IsLowStock())

	explicit := Inventory{MinStock: 10, ReorderPoint: 0}
	explicit.ApplyDefaults(now, true, true)
	assert.Equal(t, 0, explicit.ReorderPoint)
	assert.False(t, explicit.IsActive)
}

func TestInventoryJSONIncludesLowStockFlag(t *testing.T) {
	item := Inventory{Name: "Widget", SKU: "WG001", Quantity: 5, ReorderPoint: 10, Price: decimal.RequireFromString("9.99")}
	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, true, out["isLowStock"])
	assert.Equal(t, 9.99, out["price"])
	assert.Equal(t, "WG001", out["sku"])
}

func TestEmployeeDerivedFields(t *testing.T) {
	hire := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	e := Employee{FirstName: "Jane", LastName: "Doe", HireDate: hire}

	assert.Equal(t, "Jane Doe", e.FullName())
	assert.Equal(t, 4, e.YearsOfService(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, e.YearsOfService(time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)))

	// 365.25-day years: four calendar years from 2020-01-01 is 1461 days
	assert.Equal(t, 4, e.YearsOfService(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, e.YearsOfService(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)))

	term := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	e.TerminationDate = &term
	assert.Equal(t, 2, e.YearsOfService(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestEmployeeNormalize(t *testing.T) {
	e := Employee{EmployeeID: " emp007 ", Email: "Jane@Corp.COM", Skills: []string{" Go ", ""}}
	e.Normalize()
	e.ApplyDefaults()

	assert.Equal(t, "EMP007", e.EmployeeID)
	assert.Equal(t, "jane@corp.com", e.Email)
	assert.Equal(t, []string{"Go"}, []string(e.Skills))
	assert.Equal(t, enum.EmployeeStatusActive, e.Status)
}

func TestEmployeeJSONIncludesVirtuals(t *testing.T) {
	e := Employee{FirstName: "Jane", LastName: "Doe", HireDate: time.Now().AddDate(-3, 0, -1)}
	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Jane Doe", out["fullName"])
	assert.Equal(t, float64(3), out["yearsOfService"])
}

func TestTransactionNormalize(t *testing.T) {
	now := time.Now()
	empty := "   "
	tx := Transaction{
		Description: " Rent ",
		Amount:      decimal.NewFromInt(-1200),
		Reference:   &empty,
		Tags:        []string{" Office", "RENT ", ""},
		Attachments: []Attachment{{Filename: "lease.pdf", URL: "https://files/lease.pdf"}},
	}
	tx.Normalize()
	tx.ApplyDefaults(now)

	assert.Nil(t, tx.Reference)
	assert.Equal(t, []string{"office", "rent"}, []string(tx.Tags))
	assert.Equal(t, now, tx.Date)
	assert.Equal(t, now, tx.Attachments[0].UploadDate)
	assert.True(t, tx.AbsoluteAmount().Equal(decimal.NewFromInt(1200)))

	ref := " INV-1 "
	tx.Reference = &ref
	tx.Normalize()
	require.NotNil(t, tx.Reference)
	assert.Equal(t, "INV-1", *tx.Reference)
}

func TestSaleLineTotals(t *testing.T) {
	sale := Sale{
		Items: []SaleItem{
			{Product: uuid.New(), ProductName: "Widget", Quantity: 3, UnitPrice: decimal.RequireFromString("9.99"), TotalPrice: decimal.NewFromInt(1)},
			{Product: uuid.New(), ProductName: "Bolt", Quantity: 10, UnitPrice: decimal.RequireFromString("0.15")},
		},
		Tax:      decimal.RequireFromString("2.00"),
		Discount: decimal.RequireFromString("1.00"),
	}

	sale.RecomputeLineTotals()
	assert.Equal(t, "29.97", sale.Items[0].TotalPrice.StringFixed(2))
	assert.Equal(t, "1.50", sale.Items[1].TotalPrice.StringFixed(2))

	first := sale.Items[0].TotalPrice
	sale.RecomputeLineTotals()
	assert.True(t, first.Equal(sale.Items[0].TotalPrice))

	sale.FillTotals(nil, nil)
	assert.Equal(t, "31.47", sale.Subtotal.StringFixed(2))
	assert.Equal(t, "32.47", sale.Total.StringFixed(2))

	given := decimal.NewFromInt(40)
	sale.FillTotals(&given, nil)
	assert.Equal(t, "41.00", sale.Total.StringFixed(2))
}

func TestSaleBeforeSaveRecomputes(t *testing.T) {
	sale := Sale{Items: []SaleItem{{Quantity: 2, UnitPrice: decimal.RequireFromString("5.50"), TotalPrice: decimal.NewFromInt(999)}}}
	require.NoError(t, sale.BeforeSave(nil))
	assert.Equal(t, "11.00", sale.Items[0].TotalPrice.StringFixed(2))
}

func TestSaleDefaults(t *testing.T) {
	now := time.Now()
	sale := Sale{OrderNumber: " ord0001 ", CustomerEmail: " A@X.com"}
	sale.Normalize()
	sale.ApplyDefaults(now)

	assert.Equal(t, "ORD0001", sale.OrderNumber)
	assert.Equal(t, "a@x.com", sale.CustomerEmail)
	assert.Equal(t, enum.SaleStatusPending, sale.Status)
	assert.Equal(t, enum.PaymentMethodCash, sale.PaymentMethod)
	assert.Equal(t, enum.PaymentStatusPending, sale.PaymentStatus)
	assert.Equal(t, now, sale.Date)
}
