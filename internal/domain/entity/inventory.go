package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Inventory is a stock-keeping item
type Inventory struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name         string          `gorm:"size:255;not null" json:"name" validate:"required"`
	SKU          string          `gorm:"column:sku;size:100;not null;uniqueIndex:uq_inventory_sku" json:"sku" validate:"required"`
	Category     string          `gorm:"size:100;not null;index" json:"category" validate:"required"`
	Quantity     int             `gorm:"not null" json:"quantity" validate:"gte=0"`
	MinStock     int             `gorm:"not null" json:"minStock" validate:"gte=0"`
	MaxStock     int             `gorm:"not null" json:"maxStock" validate:"gte=0"`
	Price        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price" validate:"gte=0"`
	Cost         decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"cost" validate:"gte=0"`
	Supplier     string          `gorm:"size:255" json:"supplier"`
	Location     string          `gorm:"size:255" json:"location"`
	LastUpdated  time.Time       `gorm:"not null;index" json:"lastUpdated"`
	ReorderPoint int             `gorm:"not null" json:"reorderPoint" validate:"gte=0"`
	Description  string          `gorm:"type:text" json:"description"`
	IsActive     bool            `gorm:"not null" json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Inventory model
func (Inventory) TableName() string {
	return "inventory"
}

// Normalize trims free text and upper-cases the SKU
func (i *Inventory) Normalize() {
	trimAll(&i.Name, &i.Category, &i.Supplier, &i.Location, &i.Description)
	i.SKU = upper(i.SKU)
}

// ApplyDefaults fills create-time defaults. A missing reorder point falls
// back to the minimum stock level.
func (i *Inventory) ApplyDefaults(now time.Time, reorderPointSet, isActiveSet bool) {
	if !reorderPointSet {
		i.ReorderPoint = i.MinStock
	}
	if !isActiveSet {
		i.IsActive = true
	}
	i.LastUpdated = now
}

// Touch records a modification
func (i *Inventory) Touch(now time.Time) {
	i.LastUpdated = now
}

// IsLowStock reports whether the item has fallen to its reorder point
func (i Inventory) IsLowStock() bool {
	return i.Quantity <= i.ReorderPoint
}

// MarshalJSON adds the isLowStock flag computed at read time
func (i Inventory) MarshalJSON() ([]byte, error) {
	type Alias Inventory
	return json.Marshal(&struct {
		Alias
		IsLowStock bool `json:"isLowStock"`
	}{
		Alias:      Alias(i),
		IsLowStock: i.IsLowStock(),
	})
}
