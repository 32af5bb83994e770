package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sangkips/erp-api/internal/domain/enum"
)

// SaleItem is one order line. ProductName and UnitPrice are copied from the
// inventory item when the line is created and are not kept in sync after.
type SaleItem struct {
	Product     uuid.UUID       `json:"product" validate:"required"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity" validate:"min=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// LineTotal is quantity times unit price
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

// Sale is a sales order. CustomerName and CustomerEmail are a snapshot of the
// customer taken when the order was placed.
type Sale struct {
	ID              uuid.UUID                     `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber     string                        `gorm:"size:50;not null;uniqueIndex:uq_sales_order_number" json:"orderNumber" validate:"required"`
	CustomerID      uuid.UUID                     `gorm:"type:uuid;not null;index" json:"customer" validate:"required"`
	CustomerName    string                        `gorm:"size:255;not null" json:"customerName" validate:"required"`
	CustomerEmail   string                        `gorm:"size:255;not null" json:"customerEmail" validate:"required"`
	Items           datatypes.JSONSlice[SaleItem] `gorm:"type:jsonb;not null" json:"items" validate:"required,min=1,dive"`
	Subtotal        decimal.Decimal               `gorm:"type:numeric(14,2);not null" json:"subtotal" validate:"gte=0"`
	Tax             decimal.Decimal               `gorm:"type:numeric(14,2);not null" json:"tax" validate:"gte=0"`
	Discount        decimal.Decimal               `gorm:"type:numeric(14,2);not null" json:"discount" validate:"gte=0"`
	Total           decimal.Decimal               `gorm:"type:numeric(14,2);not null" json:"total" validate:"gte=0"`
	Status          enum.SaleStatus               `gorm:"size:20;not null;index" json:"status" validate:"required,enum"`
	Date            time.Time                     `gorm:"not null;index" json:"date" validate:"required"`
	SalesRep        string                        `gorm:"size:255" json:"salesRep"`
	PaymentMethod   enum.PaymentMethod            `gorm:"size:20;not null" json:"paymentMethod" validate:"required,enum"`
	PaymentStatus   enum.PaymentStatus            `gorm:"size:20;not null" json:"paymentStatus" validate:"required,enum"`
	ShippingAddress string                        `gorm:"type:text" json:"shippingAddress"`
	Notes           string                        `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time                     `json:"createdAt"`
	UpdatedAt       time.Time                     `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps stored line totals consistent with quantity and unit price
func (s *Sale) BeforeSave(tx *gorm.DB) error {
	s.RecomputeLineTotals()
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// Normalize trims free text
func (s *Sale) Normalize() {
	trimAll(&s.CustomerName, &s.SalesRep, &s.ShippingAddress, &s.Notes)
	s.OrderNumber = upper(s.OrderNumber)
	s.CustomerEmail = lower(s.CustomerEmail)
	for i := range s.Items {
		s.Items[i].ProductName = strings.TrimSpace(s.Items[i].ProductName)
	}
}

// ApplyDefaults fills create-time defaults
func (s *Sale) ApplyDefaults(now time.Time) {
	if s.Status == "" {
		s.Status = enum.SaleStatusPending
	}
	if s.PaymentMethod == "" {
		s.PaymentMethod = enum.PaymentMethodCash
	}
	if s.PaymentStatus == "" {
		s.PaymentStatus = enum.PaymentStatusPending
	}
	if s.Date.IsZero() {
		s.Date = now
	}
}

// RecomputeLineTotals overwrites every line total with quantity times unit
// price. Calling it repeatedly yields the same values.
func (s *Sale) RecomputeLineTotals() {
	for i := range s.Items {
		s.Items[i].TotalPrice = s.Items[i].LineTotal()
	}
}

// ItemsTotal sums the line totals
func (s *Sale) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// FillTotals sets subtotal and total. A nil argument means the caller did not
// supply the value: subtotal then becomes the sum of the lines and total
// becomes subtotal + tax - discount. Supplied values are kept as given.
func (s *Sale) FillTotals(subtotal, total *decimal.Decimal) {
	if subtotal != nil {
		s.Subtotal = *subtotal
	} else {
		s.Subtotal = s.ItemsTotal()
	}
	if total != nil {
		s.Total = *total
	} else {
		s.Total = s.Subtotal.Add(s.Tax).Sub(s.Discount)
	}
}
