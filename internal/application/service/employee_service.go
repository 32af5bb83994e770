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

// EmployeeService handles HR record operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	validator    *schema.Validator
	now          Clock
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository, validator *schema.Validator, now Clock) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, validator: validator, now: now}
}

// EmployeeInput is the request body for creating or updating an employee.
// An omitted employeeId is generated on create.
type EmployeeInput struct {
	EmployeeID        *string              `json:"employeeId"`
	FirstName         *string              `json:"firstName"`
	LastName          *string              `json:"lastName"`
	Email             *string              `json:"email"`
	Phone             *string              `json:"phone"`
	Position          *string              `json:"position"`
	Department        *string              `json:"department"`
	Salary            *decimal.Decimal     `json:"salary" validate:"required"`
	HireDate          *utils.FlexTime      `json:"hireDate" validate:"required"`
	TerminationDate   utils.NullableTime   `json:"terminationDate"`
	Status            *enum.EmployeeStatus `json:"status"`
	Manager           *string              `json:"manager"`
	Address           *string              `json:"address"`
	EmergencyContact  *string              `json:"emergencyContact"`
	Benefits          []string             `json:"benefits"`
	Skills            []string             `json:"skills"`
	PerformanceRating *float64             `json:"performanceRating"`
}

func (in *EmployeeInput) apply(e *entity.Employee) {
	setString(&e.EmployeeID, in.EmployeeID)
	setString(&e.FirstName, in.FirstName)
	setString(&e.LastName, in.LastName)
	setString(&e.Email, in.Email)
	setString(&e.Phone, in.Phone)
	setString(&e.Position, in.Position)
	setString(&e.Department, in.Department)
	if in.Salary != nil {
		e.Salary = *in.Salary
	}
	if in.HireDate != nil {
		e.HireDate = in.HireDate.Time
	}
	in.TerminationDate.ApplyTo(&e.TerminationDate)
	if in.Status != nil {
		e.Status = *in.Status
	}
	setString(&e.Manager, in.Manager)
	setString(&e.Address, in.Address)
	setString(&e.EmergencyContact, in.EmergencyContact)
	if in.Benefits != nil {
		e.Benefits = in.Benefits
	}
	if in.Skills != nil {
		e.Skills = in.Skills
	}
	if in.PerformanceRating != nil {
		rating := *in.PerformanceRating
		e.PerformanceRating = &rating
	}
}

// CreateEmployee validates and stores a new employee. When no employeeId is
// given the next EMPnnn value is derived from the current employee count.
// Two concurrent creates can derive the same id; the unique index rejects
// the second one and the caller sees a validation error on employeeId.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *EmployeeInput) (*entity.Employee, error) {
	employee := &entity.Employee{}
	input.apply(employee)
	employee.Normalize()
	employee.ApplyDefaults()

	if employee.EmployeeID == "" {
		count, err := s.employeeRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		employee.EmployeeID = utils.NextEmployeeID(count)
	}

	if err := s.validator.Check(nil, input, employee); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, translateWriteError(err)
	}
	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees returns every employee, most recent hire first
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// UpdateEmployee merges the supplied fields into the stored employee and re-validates it
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *EmployeeInput) (*entity.Employee, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(employee)
	employee.Normalize()

	if err := s.validator.Check(nil, employee); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, translateWriteError(err)
	}
	return employee, nil
}

// DeleteEmployee removes an employee record
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetEmployee(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}
