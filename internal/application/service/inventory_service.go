package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/entity"
	"github.com/sangkips/erp-api/internal/domain/repository"
	"github.com/sangkips/erp-api/internal/domain/schema"
	"github.com/sangkips/erp-api/pkg/apperror"
)

// InventoryService handles inventory-related operations
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	validator     *schema.Validator
	now           Clock
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository, validator *schema.Validator, now Clock) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo, validator: validator, now: now}
}

// InventoryInput is the request body for creating or updating an inventory item.
// The numeric stock and price fields must be present on create.
type InventoryInput struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Category     *string          `json:"category"`
	Quantity     *int             `json:"quantity" validate:"required"`
	MinStock     *int             `json:"minStock" validate:"required"`
	MaxStock     *int             `json:"maxStock" validate:"required"`
	Price        *decimal.Decimal `json:"price" validate:"required"`
	Cost         *decimal.Decimal `json:"cost" validate:"required"`
	Supplier     *string          `json:"supplier"`
	Location     *string          `json:"location"`
	ReorderPoint *int             `json:"reorderPoint"`
	Description  *string          `json:"description"`
	IsActive     *bool            `json:"isActive"`
}

func (in *InventoryInput) apply(item *entity.Inventory) {
	setString(&item.Name, in.Name)
	setString(&item.SKU, in.SKU)
	setString(&item.Category, in.Category)
	setInt(&item.Quantity, in.Quantity)
	setInt(&item.MinStock, in.MinStock)
	setInt(&item.MaxStock, in.MaxStock)
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Cost != nil {
		item.Cost = *in.Cost
	}
	setString(&item.Supplier, in.Supplier)
	setString(&item.Location, in.Location)
	setInt(&item.ReorderPoint, in.ReorderPoint)
	setString(&item.Description, in.Description)
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
}

// CreateItem validates and stores a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, input *InventoryInput) (*entity.Inventory, error) {
	item := &entity.Inventory{}
	input.apply(item)
	item.Normalize()
	item.ApplyDefaults(s.now(), input.ReorderPoint != nil, input.IsActive != nil)

	if err := s.validator.Check(nil, input, item); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, translateWriteError(err)
	}
	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// ListItems returns every item, most recently updated first
func (s *InventoryService) ListItems(ctx context.Context) ([]entity.Inventory, error) {
	return s.inventoryRepo.List(ctx)
}

// ListLowStock returns the items at or below their minimum stock level
func (s *InventoryService) ListLowStock(ctx context.Context) ([]entity.Inventory, error) {
	return s.inventoryRepo.ListLowStock(ctx)
}

// UpdateItem merges the supplied fields, re-validates and touches lastUpdated
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, input *InventoryInput) (*entity.Inventory, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(item)
	item.Normalize()
	item.Touch(s.now())

	if err := s.validator.Check(nil, item); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, translateWriteError(err)
	}
	return item, nil
}

// DeleteItem removes an inventory item. Sales lines that reference it keep their snapshot.
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	return s.inventoryRepo.Delete(ctx, id)
}
