package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangkips/erp-api/internal/domain/entity"
)

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.Inventory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)
	// GetByIDs returns the items found, keyed by id; missing ids are simply absent
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Inventory, error)
	Update(ctx context.Context, item *entity.Inventory) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every item, most recently updated first
	List(ctx context.Context) ([]entity.Inventory, error)
	// ListLowStock returns items whose quantity is at or below minStock
	ListLowStock(ctx context.Context) ([]entity.Inventory, error)
}
