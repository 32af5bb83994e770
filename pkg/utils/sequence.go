package utils

import "fmt"

const (
	// OrderNumberPrefix prefixes generated sales order numbers (ORD0001)
	OrderNumberPrefix = "ORD"
	// OrderNumberWidth is the zero-padded width of the order counter
	OrderNumberWidth = 4
	// EmployeeIDPrefix prefixes generated employee ids (EMP001)
	EmployeeIDPrefix = "EMP"
	// EmployeeIDWidth is the zero-padded width of the employee counter
	EmployeeIDWidth = 3
)

// FormatSequence renders a sequence-style identifier: prefix followed by n
// zero-padded to width digits. Values wider than width are not truncated.
func FormatSequence(prefix string, n int64, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// NextOrderNumber derives the next order number from the current order count
func NextOrderNumber(count int64) string {
	return FormatSequence(OrderNumberPrefix, count+1, OrderNumberWidth)
}

// NextEmployeeID derives the next employee id from the current employee count
func NextEmployeeID(count int64) string {
	return FormatSequence(EmployeeIDPrefix, count+1, EmployeeIDWidth)
}
