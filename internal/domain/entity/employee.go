package entity

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sangkips/erp-api/internal/domain/enum"
)

// yearLength is the average calendar year used for service years
const yearLength = time.Duration(365.25 * 24 * float64(time.Hour))

// Employee is an HR record
type Employee struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID        string                      `gorm:"column:employee_id;size:20;not null;uniqueIndex:uq_employees_employee_id" json:"employeeId" validate:"required"`
	FirstName         string                      `gorm:"size:100;not null" json:"firstName" validate:"required"`
	LastName          string                      `gorm:"size:100;not null" json:"lastName" validate:"required"`
	Email             string                      `gorm:"size:255;not null;uniqueIndex:uq_employees_email" json:"email" validate:"required,email"`
	Phone             string                      `gorm:"size:50;not null" json:"phone" validate:"required"`
	Position          string                      `gorm:"size:100;not null" json:"position" validate:"required"`
	Department        string                      `gorm:"size:100;not null;index" json:"department" validate:"required"`
	Salary            decimal.Decimal             `gorm:"type:numeric(14,2);not null" json:"salary" validate:"gte=0"`
	HireDate          time.Time                   `gorm:"not null;index" json:"hireDate" validate:"required"`
	TerminationDate   *time.Time                  `json:"terminationDate,omitempty" validate:"omitempty,gtefield=HireDate"`
	Status            enum.EmployeeStatus         `gorm:"size:20;not null;index" json:"status" validate:"required,enum"`
	Manager           string                      `gorm:"size:255" json:"manager"`
	Address           string                      `gorm:"type:text" json:"address"`
	EmergencyContact  string                      `gorm:"size:255" json:"emergencyContact"`
	Benefits          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"benefits"`
	Skills            datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
	PerformanceRating *float64                    `json:"performanceRating,omitempty" validate:"omitempty,gte=1,lte=5"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// Normalize trims free text and case-folds the identifiers
func (e *Employee) Normalize() {
	trimAll(&e.FirstName, &e.LastName, &e.Phone, &e.Position, &e.Department,
		&e.Manager, &e.Address, &e.EmergencyContact)
	e.EmployeeID = upper(e.EmployeeID)
	e.Email = lower(e.Email)
	e.Status = enum.EmployeeStatus(strings.TrimSpace(string(e.Status)))
	e.Benefits = normalizeList(e.Benefits, strings.TrimSpace)
	e.Skills = normalizeList(e.Skills, strings.TrimSpace)
}

// ApplyDefaults fills create-time defaults
func (e *Employee) ApplyDefaults() {
	if e.Status == "" {
		e.Status = enum.EmployeeStatusActive
	}
}

// FullName joins first and last name
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// YearsOfService counts whole average years between the hire date and the
// termination date, or now while still employed
func (e Employee) YearsOfService(now time.Time) int {
	end := now
	if e.TerminationDate != nil {
		end = *e.TerminationDate
	}
	return int(math.Floor(float64(end.Sub(e.HireDate)) / float64(yearLength)))
}

// MarshalJSON adds fullName and yearsOfService computed at read time
func (e Employee) MarshalJSON() ([]byte, error) {
	type Alias Employee
	return json.Marshal(&struct {
		Alias
		FullName       string `json:"fullName"`
		YearsOfService int    `json:"yearsOfService"`
	}{
		Alias:          Alias(e),
		FullName:       e.FullName(),
		YearsOfService: e.YearsOfService(time.Now()),
	})
}
