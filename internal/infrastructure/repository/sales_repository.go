package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sangkips/erp-api/internal/domain/entity"
	domainRepo "github.com/sangkips/erp-api/internal/domain/repository"
)

type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a new sales order repository
func NewSalesRepository(db *gorm.DB) domainRepo.SalesRepository {
	return &salesRepository{db: db}
}

// Create inserts the order and its embedded lines in one statement
func (r *salesRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return translateError(r.db.WithContext(ctx).Create(sale).Error)
}

func (r *salesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *salesRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return translateError(r.db.WithContext(ctx).Save(sale).Error)
}

func (r *salesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sale{}, "id = ?", id).Error
}

func (r *salesRepository) List(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).Scopes(SortDesc("date")).Find(&sales).Error
	return sales, err
}

func (r *salesRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).Count(&count).Error
	return count, err
}
