package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	domainRepo "github.com/sangkips/erp-api/internal/domain/repository"
)

// uniqueViolation is the SQLSTATE postgres raises for unique index collisions
const uniqueViolation = "23505"

// constraintFields maps unique index names to the JSON field they protect
var constraintFields = map[string]string{
	"uq_customers_email":        "email",
	"uq_inventory_sku":          "sku",
	"uq_employees_employee_id":  "employeeId",
	"uq_employees_email":        "email",
	"uq_sales_order_number":     "orderNumber",
	"uq_transactions_reference": "reference",
}

// translateError converts driver errors the service layer needs to reason
// about into domain errors. Everything else is returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &domainRepo.DuplicateError{
			Field:      constraintFields[pgErr.ConstraintName],
			Constraint: pgErr.ConstraintName,
		}
	}
	return err
}
