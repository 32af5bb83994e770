package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/erp-api/internal/domain/enum"
)

// Customer represents a customer of the business
type Customer struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name        string              `gorm:"size:255;not null" json:"name" validate:"required"`
	Email       string              `gorm:"size:255;not null;uniqueIndex:uq_customers_email" json:"email" validate:"required,email"`
	Phone       string              `gorm:"size:50;not null" json:"phone" validate:"required"`
	Company     string              `gorm:"size:255" json:"company"`
	Address     string              `gorm:"type:text" json:"address"`
	Status      enum.CustomerStatus `gorm:"size:20;not null" json:"status" validate:"required,enum"`
	CreatedDate time.Time           `gorm:"not null;index" json:"createdDate" validate:"required"`
	LastContact *time.Time          `json:"lastContact,omitempty"`
	TotalOrders int                 `gorm:"not null" json:"totalOrders" validate:"gte=0"`
	TotalSpent  decimal.Decimal     `gorm:"type:numeric(14,2);not null" json:"totalSpent" validate:"gte=0"`
	Notes       string              `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Normalize trims free text and lower-cases the email so uniqueness is case-insensitive
func (c *Customer) Normalize() {
	trimAll(&c.Name, &c.Phone, &c.Company, &c.Address, &c.Notes)
	c.Email = lower(c.Email)
	c.Status = enum.CustomerStatus(strings.TrimSpace(string(c.Status)))
}

// ApplyDefaults fills create-time defaults
func (c *Customer) ApplyDefaults(now time.Time) {
	if c.Status == "" {
		c.Status = enum.CustomerStatusActive
	}
	if c.CreatedDate.IsZero() {
		c.CreatedDate = now
	}
}
