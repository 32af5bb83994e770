package repository

import (
	"errors"
	"fmt"
)

// DuplicateError reports that a write collided with a unique index.
// Field is the JSON name of the offending field when it is known.
type DuplicateError struct {
	Field      string
	Constraint string
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("duplicate value violates %s", e.Constraint)
	}
	return fmt.Sprintf("duplicate %s", e.Field)
}

// AsDuplicate unwraps a DuplicateError from err
func AsDuplicate(err error) (*DuplicateError, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}
