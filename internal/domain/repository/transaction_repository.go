package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangkips/erp-api/internal/domain/entity"
)

// TransactionRepository defines the interface for financial transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every transaction, latest date first
	List(ctx context.Context) ([]entity.Transaction, error)
}
