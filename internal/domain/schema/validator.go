// Package schema validates entity documents before they reach the store.
//
// Constraints live on the entities as `validate` struct tags. A Validator
// reports every violated field at once, using the JSON field path
// (items[0].quantity) so callers can show errors next to their inputs.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/enum"
	"github.com/sangkips/erp-api/pkg/apperror"
)

var enumOptions = map[reflect.Type][]string{
	reflect.TypeOf(enum.CustomerStatus("")):     enum.Strings(enum.CustomerStatuses()),
	reflect.TypeOf(enum.EmployeeStatus("")):     enum.Strings(enum.EmployeeStatuses()),
	reflect.TypeOf(enum.SaleStatus("")):         enum.Strings(enum.SaleStatuses()),
	reflect.TypeOf(enum.PaymentMethod("")):      enum.Strings(enum.PaymentMethods()),
	reflect.TypeOf(enum.PaymentStatus("")):      enum.Strings(enum.PaymentStatuses()),
	reflect.TypeOf(enum.TransactionType("")):    enum.Strings(enum.TransactionTypes()),
	reflect.TypeOf(enum.RecurringFrequency("")): enum.Strings(enum.RecurringFrequencies()),
}

// Validator wraps a configured validator.Validate. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the ERP-specific tags registered
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Money is validated as a plain number so gte/lte work on it
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// enum accepts the empty value; pair it with required where presence matters
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() == reflect.String && fl.Field().Len() == 0 {
			return true
		}
		e, ok := fl.Field().Interface().(enum.Validatable)
		return ok && e.IsValid()
	})

	return &Validator{validate: v}
}

// Fields validates doc and returns one FieldError per violated constraint.
// It returns nil when doc is valid.
func (s *Validator) Fields(doc interface{}) []apperror.FieldError {
	err := s.validate.Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperror.FieldError{{Field: "_", Message: err.Error()}}
	}

	out := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperror.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out
}

// Check validates every doc and merges their violations with extra. The
// first violation reported for a field wins. It returns a validation
// AppError when anything failed.
func (s *Validator) Check(extra []apperror.FieldError, docs ...interface{}) error {
	all := append([]apperror.FieldError{}, extra...)
	for _, doc := range docs {
		all = append(all, s.Fields(doc)...)
	}
	if len(all) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(all))
	merged := make([]apperror.FieldError, 0, len(all))
	for _, fe := range all {
		if seen[fe.Field] {
			continue
		}
		seen[fe.Field] = true
		merged = append(merged, fe)
	}
	return apperror.NewValidationError(merged)
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return fmt.Sprintf("is required when %s", requiredIfCondition(fe.Param()))
	case "email":
		return "must be a valid email address"
	case "gte", "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be before %s", lowerFirst(fe.Param()))
	case "enum":
		if opts, ok := enumOptions[fe.Type()]; ok {
			return fmt.Sprintf("must be one of: %s", strings.Join(opts, ", "))
		}
		return fmt.Sprintf("has an unsupported value %q", fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("failed the %s constraint", fe.Tag())
}

// requiredIfCondition turns "IsRecurring true" into "isRecurring is true"
func requiredIfCondition(param string) string {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		return param
	}
	return fmt.Sprintf("%s is %s", lowerFirst(parts[0]), parts[1])
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
