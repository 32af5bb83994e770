package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangkips/erp-api/internal/domain/entity"
)

// SalesRepository defines the interface for sales order data operations
type SalesRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every order, latest date first
	List(ctx context.Context) ([]entity.Sale, error)
	// Count is used to derive the next order number
	Count(ctx context.Context) (int64, error)
}
