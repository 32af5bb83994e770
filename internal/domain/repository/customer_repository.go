package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangkips/erp-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations.
// Getters return (nil, nil) when nothing matches.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every customer, newest createdDate first
	List(ctx context.Context) ([]entity.Customer, error)
}
