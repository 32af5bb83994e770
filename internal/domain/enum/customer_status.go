package enum

// CustomerStatus represents the lifecycle state of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusInactive CustomerStatus = "Inactive"
	CustomerStatusPending  CustomerStatus = "Pending"
)

// CustomerStatuses lists every accepted customer status
func CustomerStatuses() []CustomerStatus {
	return []CustomerStatus{CustomerStatusActive, CustomerStatusInactive, CustomerStatusPending}
}

func (s CustomerStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known customer statuses
func (s CustomerStatus) IsValid() bool {
	return contains(CustomerStatuses(), s)
}
