package enum

// PaymentMethod represents how a sales order is paid
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodDebitCard    PaymentMethod = "Debit Card"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCheck        PaymentMethod = "Check"
	PaymentMethodOther        PaymentMethod = "Other"
)

// PaymentMethods lists every accepted payment method
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodBankTransfer,
		PaymentMethodCheck,
		PaymentMethodOther,
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether m is one of the known payment methods
func (m PaymentMethod) IsValid() bool {
	return contains(PaymentMethods(), m)
}

// PaymentStatus represents the settlement state of a sales order
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "Pending"
	PaymentStatusPaid          PaymentStatus = "Paid"
	PaymentStatusPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentStatusRefunded      PaymentStatus = "Refunded"
)

// PaymentStatuses lists every accepted payment status
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusPaid,
		PaymentStatusPartiallyPaid,
		PaymentStatusRefunded,
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known payment statuses
func (s PaymentStatus) IsValid() bool {
	return contains(PaymentStatuses(), s)
}
