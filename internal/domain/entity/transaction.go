package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sangkips/erp-api/internal/domain/enum"
)

// Attachment is a file linked to a transaction
type Attachment struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadDate time.Time `json:"uploadDate"`
}

// Transaction is a financial ledger entry. Amount is signed.
type Transaction struct {
	ID                 uuid.UUID                       `gorm:"type:uuid;primary_key" json:"id"`
	Description        string                          `gorm:"type:text;not null" json:"description" validate:"required"`
	Amount             decimal.Decimal                 `gorm:"type:numeric(14,2);not null" json:"amount"`
	Type               enum.TransactionType            `gorm:"size:10;not null;index" json:"type" validate:"required,enum"`
	Category           string                          `gorm:"size:100;not null;index" json:"category" validate:"required"`
	Date               time.Time                       `gorm:"not null;index" json:"date" validate:"required"`
	Reference          *string                         `gorm:"size:100;uniqueIndex:uq_transactions_reference" json:"reference,omitempty"`
	Account            string                          `gorm:"size:100;not null" json:"account" validate:"required"`
	Tags               datatypes.JSONSlice[string]     `gorm:"type:jsonb" json:"tags"`
	Attachments        datatypes.JSONSlice[Attachment] `gorm:"type:jsonb" json:"attachments"`
	IsRecurring        bool                            `gorm:"not null" json:"isRecurring"`
	RecurringFrequency enum.RecurringFrequency         `gorm:"size:20" json:"recurringFrequency,omitempty" validate:"required_if=IsRecurring true,enum"`
	Notes              string                          `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time                       `json:"createdAt"`
	UpdatedAt          time.Time                       `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Normalize trims free text, lower-cases tags and drops an empty reference
// so it never takes part in uniqueness
func (t *Transaction) Normalize() {
	trimAll(&t.Description, &t.Category, &t.Account, &t.Notes)
	t.Type = enum.TransactionType(strings.TrimSpace(string(t.Type)))
	t.RecurringFrequency = enum.RecurringFrequency(strings.TrimSpace(string(t.RecurringFrequency)))
	if t.Reference != nil {
		ref := strings.TrimSpace(*t.Reference)
		if ref == "" {
			t.Reference = nil
		} else {
			t.Reference = &ref
		}
	}
	t.Tags = normalizeList(t.Tags, lower)
	for i := range t.Attachments {
		trimAll(&t.Attachments[i].Filename, &t.Attachments[i].URL)
	}
}

// ApplyDefaults fills create-time defaults
func (t *Transaction) ApplyDefaults(now time.Time) {
	if t.Date.IsZero() {
		t.Date = now
	}
	for i := range t.Attachments {
		if t.Attachments[i].UploadDate.IsZero() {
			t.Attachments[i].UploadDate = now
		}
	}
}

// AbsoluteAmount is the unsigned amount
func (t Transaction) AbsoluteAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// MarshalJSON adds absoluteAmount
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		AbsoluteAmount decimal.Decimal `json:"absoluteAmount"`
	}{
		Alias:          Alias(t),
		AbsoluteAmount: t.AbsoluteAmount(),
	})
}
