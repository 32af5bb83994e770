package enum

// SaleStatus represents the fulfilment status of a sales order
type SaleStatus string

const (
	SaleStatusPending    SaleStatus = "Pending"
	SaleStatusProcessing SaleStatus = "Processing"
	SaleStatusShipped    SaleStatus = "Shipped"
	SaleStatusDelivered  SaleStatus = "Delivered"
	SaleStatusCompleted  SaleStatus = "Completed"
	SaleStatusCancelled  SaleStatus = "Cancelled"
)

// SaleStatuses lists every accepted sales order status, in fulfilment order
func SaleStatuses() []SaleStatus {
	return []SaleStatus{
		SaleStatusPending,
		SaleStatusProcessing,
		SaleStatusShipped,
		SaleStatusDelivered,
		SaleStatusCompleted,
		SaleStatusCancelled,
	}
}

func (s SaleStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known sales order statuses
func (s SaleStatus) IsValid() bool {
	return contains(SaleStatuses(), s)
}
