package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/entity"
	"github.com/sangkips/erp-api/internal/domain/enum"
	"github.com/sangkips/erp-api/internal/domain/repository"
	"github.com/sangkips/erp-api/internal/domain/schema"
	"github.com/sangkips/erp-api/pkg/apperror"
	"github.com/sangkips/erp-api/pkg/utils"
)

// SalesService handles sales orders. Orders copy the customer's name and
// email and each product's name and unit price at the time a line is
// written; later edits to customers or inventory never touch an order.
type SalesService struct {
	salesRepo     repository.SalesRepository
	customerRepo  repository.CustomerRepository
	inventoryRepo repository.InventoryRepository
	validator     *schema.Validator
	now           Clock
}

// NewSalesService creates a new sales service
func NewSalesService(
	salesRepo repository.SalesRepository,
	customerRepo repository.CustomerRepository,
	inventoryRepo repository.InventoryRepository,
	validator *schema.Validator,
	now Clock,
) *SalesService {
	return &SalesService{
		salesRepo:     salesRepo,
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
		validator:     validator,
		now:           now,
	}
}

// SaleItemInput is one order line. Product name, unit price and line total
// are taken from the inventory item, not from the request.
type SaleItemInput struct {
	Product  *uuid.UUID `json:"product" validate:"required"`
	Quantity *int       `json:"quantity" validate:"required"`
}

// SaleInput is the request body for creating or updating a sales order.
// Omitted subtotal and total are derived from the lines.
type SaleInput struct {
	OrderNumber     *string             `json:"orderNumber"`
	Customer        *uuid.UUID          `json:"customer" validate:"required"`
	Items           []SaleItemInput     `json:"items" validate:"required,min=1,dive"`
	Subtotal        *decimal.Decimal    `json:"subtotal"`
	Tax             *decimal.Decimal    `json:"tax"`
	Discount        *decimal.Decimal    `json:"discount"`
	Total           *decimal.Decimal    `json:"total"`
	Status          *enum.SaleStatus    `json:"status"`
	Date            *utils.FlexTime     `json:"date"`
	SalesRep        *string             `json:"salesRep"`
	PaymentMethod   *enum.PaymentMethod `json:"paymentMethod"`
	PaymentStatus   *enum.PaymentStatus `json:"paymentStatus"`
	ShippingAddress *string             `json:"shippingAddress"`
	Notes           *string             `json:"notes"`
}

// applyScalars copies every field except customer, items and the totals
func (in *SaleInput) applyScalars(sale *entity.Sale) {
	setString(&sale.OrderNumber, in.OrderNumber)
	if in.Tax != nil {
		sale.Tax = *in.Tax
	}
	if in.Discount != nil {
		sale.Discount = *in.Discount
	}
	if in.Status != nil {
		sale.Status = *in.Status
	}
	if in.Date != nil {
		sale.Date = in.Date.Time
	}
	setString(&sale.SalesRep, in.SalesRep)
	if in.PaymentMethod != nil {
		sale.PaymentMethod = *in.PaymentMethod
	}
	if in.PaymentStatus != nil {
		sale.PaymentStatus = *in.PaymentStatus
	}
	setString(&sale.ShippingAddress, in.ShippingAddress)
	setString(&sale.Notes, in.Notes)
}

// CreateSale validates the order, snapshots customer and product data and
// stores it. An omitted orderNumber becomes ORDnnnn from the current order
// count; concurrent creates can derive the same number, in which case the
// unique index rejects the later one as a validation error on orderNumber.
func (s *SalesService) CreateSale(ctx context.Context, input *SaleInput) (*entity.Sale, error) {
	sale := &entity.Sale{}
	input.applyScalars(sale)

	var extra []apperror.FieldError
	if input.Customer != nil {
		fieldErrs, err := s.snapshotCustomer(ctx, sale, *input.Customer)
		if err != nil {
			return nil, err
		}
		extra = append(extra, fieldErrs...)
	}

	items, fieldErrs, err := s.buildItems(ctx, input.Items, nil)
	if err != nil {
		return nil, err
	}
	extra = append(extra, fieldErrs...)
	sale.Items = items

	sale.Normalize()
	sale.ApplyDefaults(s.now())
	sale.RecomputeLineTotals()
	sale.FillTotals(input.Subtotal, input.Total)

	if sale.OrderNumber == "" {
		count, err := s.salesRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		sale.OrderNumber = utils.NextOrderNumber(count)
	}

	if err := s.validator.Check(extra, input, sale); err != nil {
		return nil, err
	}

	if err := s.salesRepo.Create(ctx, sale); err != nil {
		return nil, translateWriteError(err)
	}
	return sale, nil
}

// GetSale retrieves a sales order by ID
func (s *SalesService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns every order, latest first
func (s *SalesService) ListSales(ctx context.Context) ([]entity.Sale, error) {
	return s.salesRepo.List(ctx)
}

// UpdateSale merges the supplied fields into the stored order. Existing
// snapshots are kept; a changed customer or a line for a product not already
// on the order is snapshotted from the current source document. Omitted
// totals are recomputed when the lines, tax or discount change.
func (s *SalesService) UpdateSale(ctx context.Context, id uuid.UUID, input *SaleInput) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}

	input.applyScalars(sale)

	var extra []apperror.FieldError
	if input.Customer != nil && *input.Customer != sale.CustomerID {
		fieldErrs, err := s.snapshotCustomer(ctx, sale, *input.Customer)
		if err != nil {
			return nil, err
		}
		extra = append(extra, fieldErrs...)
	}

	if input.Items != nil {
		items, fieldErrs, err := s.buildItems(ctx, input.Items, sale.Items)
		if err != nil {
			return nil, err
		}
		extra = append(extra, fieldErrs...)
		sale.Items = items
	}

	sale.Normalize()
	sale.RecomputeLineTotals()

	subtotal := input.Subtotal
	if subtotal == nil && input.Items == nil {
		subtotal = &sale.Subtotal
	}
	total := input.Total
	if total == nil && input.Items == nil && input.Subtotal == nil && input.Tax == nil && input.Discount == nil {
		total = &sale.Total
	}
	sale.FillTotals(subtotal, total)

	if err := s.validator.Check(extra, sale); err != nil {
		return nil, err
	}

	if err := s.salesRepo.Update(ctx, sale); err != nil {
		return nil, translateWriteError(err)
	}
	return sale, nil
}

// DeleteSale removes a sales order
func (s *SalesService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSale(ctx, id); err != nil {
		return err
	}
	return s.salesRepo.Delete(ctx, id)
}

// snapshotCustomer points the sale at customerID and copies its name and email
func (s *SalesService) snapshotCustomer(ctx context.Context, sale *entity.Sale, customerID uuid.UUID) ([]apperror.FieldError, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return []apperror.FieldError{{Field: "customer", Message: "does not reference an existing customer"}}, nil
	}
	sale.CustomerID = customer.ID
	sale.CustomerName = customer.Name
	sale.CustomerEmail = customer.Email
	return nil, nil
}

// buildItems turns request lines into order lines. Lines whose product is
// already on the order reuse that snapshot; the others are looked up.
// Lines missing a product or quantity are left for schema validation.
func (s *SalesService) buildItems(ctx context.Context, lines []SaleItemInput, existing []entity.SaleItem) ([]entity.SaleItem, []apperror.FieldError, error) {
	known := make(map[uuid.UUID]entity.SaleItem, len(existing))
	for _, item := range existing {
		known[item.Product] = item
	}

	var lookup []uuid.UUID
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		if _, ok := known[*line.Product]; !ok {
			lookup = append(lookup, *line.Product)
		}
	}

	products, err := s.inventoryRepo.GetByIDs(ctx, lookup)
	if err != nil {
		return nil, nil, err
	}

	var fieldErrs []apperror.FieldError
	items := make([]entity.SaleItem, 0, len(lines))
	for i, line := range lines {
		item := entity.SaleItem{}
		if line.Quantity != nil {
			item.Quantity = *line.Quantity
		}
		if line.Product != nil {
			item.Product = *line.Product
			if prev, ok := known[item.Product]; ok {
				item.ProductName = prev.ProductName
				item.UnitPrice = prev.UnitPrice
			} else if product, ok := products[item.Product]; ok {
				item.ProductName = product.Name
				item.UnitPrice = product.Price
			} else {
				fieldErrs = append(fieldErrs, apperror.FieldError{
					Field:   fmt.Sprintf("items[%d].product", i),
					Message: "does not reference an existing inventory item",
				})
			}
		}
		items = append(items, item)
	}
	return items, fieldErrs, nil
}
