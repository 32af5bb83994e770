package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/entity"
	"github.com/sangkips/erp-api/internal/domain/enum"
	"github.com/sangkips/erp-api/internal/domain/repository"
	"github.com/sangkips/erp-api/internal/domain/schema"
	"github.com/sangkips/erp-api/pkg/apperror"
	"github.com/sangkips/erp-api/pkg/utils"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	validator    *schema.Validator
	now          Clock
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, validator *schema.Validator, now Clock) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, validator: validator, now: now}
}

// CustomerInput is the request body for creating or updating a customer.
// Absent fields are left untouched on update.
type CustomerInput struct {
	Name        *string              `json:"name"`
	Email       *string              `json:"email"`
	Phone       *string              `json:"phone"`
	Company     *string              `json:"company"`
	Address     *string              `json:"address"`
	Status      *enum.CustomerStatus `json:"status"`
	CreatedDate *utils.FlexTime      `json:"createdDate"`
	LastContact utils.NullableTime   `json:"lastContact"`
	TotalOrders *int                 `json:"totalOrders"`
	TotalSpent  *decimal.Decimal     `json:"totalSpent"`
	Notes       *string              `json:"notes"`
}

func (in *CustomerInput) apply(c *entity.Customer) {
	setString(&c.Name, in.Name)
	setString(&c.Email, in.Email)
	setString(&c.Phone, in.Phone)
	setString(&c.Company, in.Company)
	setString(&c.Address, in.Address)
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.CreatedDate != nil {
		c.CreatedDate = in.CreatedDate.Time
	}
	in.LastContact.ApplyTo(&c.LastContact)
	if in.TotalOrders != nil {
		c.TotalOrders = *in.TotalOrders
	}
	if in.TotalSpent != nil {
		c.TotalSpent = *in.TotalSpent
	}
	setString(&c.Notes, in.Notes)
}

// CreateCustomer validates and stores a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{}
	input.apply(customer)
	customer.Normalize()
	customer.ApplyDefaults(s.now())

	if err := s.check(ctx, customer); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, translateWriteError(err)
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns every customer, newest first
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx)
}

// UpdateCustomer merges the supplied fields into the stored customer and re-validates it
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(customer)
	customer.Normalize()

	if err := s.check(ctx, customer); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, translateWriteError(err)
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Sales that reference it keep their snapshot.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// check validates the document and reports an email already used by
// another customer alongside any schema violations
func (s *CustomerService) check(ctx context.Context, customer *entity.Customer) error {
	var extra []apperror.FieldError
	if customer.Email != "" {
		existing, err := s.customerRepo.GetByEmail(ctx, customer.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != customer.ID {
			extra = append(extra, apperror.FieldError{Field: "email", Message: "already exists"})
		}
	}
	return s.validator.Check(extra, customer)
}
