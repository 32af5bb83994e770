// Package enum holds the closed value sets used by the ERP entities.
package enum

import "slices"

// Validatable is implemented by every enum in this package. The schema
// validator uses it to check enum-tagged fields.
type Validatable interface {
	IsValid() bool
}

func contains[T comparable](values []T, v T) bool {
	return slices.Contains(values, v)
}

// Strings renders a value set for error messages
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
