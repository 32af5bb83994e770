package repository

import (
	"context"
	"time"

	"github.com/sangkips/erp-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// Get retrieves a stored response by key, principal and endpoint
	Get(ctx context.Context, key, principal, endpoint string) (*entity.IdempotencyKey, error)
	// Save stores a response, replacing an expired record for the same scope
	Save(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes keys that expired before now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
