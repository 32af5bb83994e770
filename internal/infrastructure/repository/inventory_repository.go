package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sangkips/erp-api/internal/domain/entity"
	domainRepo "github.com/sangkips/erp-api/internal/domain/repository"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.Inventory) error {
	return translateError(r.db.WithContext(ctx).Create(item).Error)
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	var item entity.Inventory
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Inventory, error) {
	found := make(map[uuid.UUID]entity.Inventory, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var items []entity.Inventory
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		found[item.ID] = item
	}
	return found, nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.Inventory) error {
	return translateError(r.db.WithContext(ctx).Save(item).Error)
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Inventory{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context) ([]entity.Inventory, error) {
	var items []entity.Inventory
	err := r.db.WithContext(ctx).Scopes(SortDesc("last_updated")).Find(&items).Error
	return items, err
}

func (r *inventoryRepository) ListLowStock(ctx context.Context) ([]entity.Inventory, error) {
	var items []entity.Inventory
	err := r.db.WithContext(ctx).
		Scopes(LowStock).
		Order("quantity ASC").
		Order("name ASC").
		Find(&items).Error
	return items, err
}
