package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangkips/erp-api/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every employee, most recent hire first
	List(ctx context.Context) ([]entity.Employee, error)
	// Count is used to derive the next employee id
	Count(ctx context.Context) (int64, error)
}
