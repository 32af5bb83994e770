// Package service implements the ERP use cases on top of the domain
// repositories. Services validate, normalize and default documents before
// they reach the store and translate store failures into apperror kinds.
package service

import (
	"time"

	"github.com/sangkips/erp-api/internal/domain/repository"
	"github.com/sangkips/erp-api/pkg/apperror"
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// translateWriteError turns a unique index collision into a validation
// failure on the colliding field
func translateWriteError(err error) error {
	dup, ok := repository.AsDuplicate(err)
	if !ok {
		return err
	}
	field := dup.Field
	if field == "" {
		field = dup.Constraint
	}
	return apperror.NewFieldError(field, "already exists")
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
