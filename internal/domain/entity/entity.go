// Package entity holds the persisted ERP documents and the rules that belong
// to a single document: normalization, create-time defaults and derived fields.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// trimAll trims surrounding whitespace from every string pointed to
func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// normalizeList trims every entry and drops the empty ones
func normalizeList(values []string, fold func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = fold(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
