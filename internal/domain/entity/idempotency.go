package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey records the response of a create request so a retried
// request carrying the same Idempotency-Key header is answered from it
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"size:255;not null;uniqueIndex:uq_idempotency_scope"`
	Principal    string    `gorm:"size:255;not null;uniqueIndex:uq_idempotency_scope"` // authenticated subject, or "anonymous"
	Endpoint     string    `gorm:"size:255;not null;uniqueIndex:uq_idempotency_scope"` // e.g. "POST /api/sales"
	RequestHash  string    `gorm:"size:64;not null"`                                   // SHA256 of the request body
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired reports whether the key may be reused for a new request
func (i *IdempotencyKey) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
