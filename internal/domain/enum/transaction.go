package enum

// TransactionType separates money coming in from money going out
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// TransactionTypes lists every accepted transaction type
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeIncome, TransactionTypeExpense}
}

func (t TransactionType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known transaction types
func (t TransactionType) IsValid() bool {
	return contains(TransactionTypes(), t)
}

// RecurringFrequency is the repeat interval of a recurring transaction
type RecurringFrequency string

const (
	RecurringDaily     RecurringFrequency = "Daily"
	RecurringWeekly    RecurringFrequency = "Weekly"
	RecurringMonthly   RecurringFrequency = "Monthly"
	RecurringQuarterly RecurringFrequency = "Quarterly"
	RecurringYearly    RecurringFrequency = "Yearly"
)

// RecurringFrequencies lists every accepted recurrence interval
func RecurringFrequencies() []RecurringFrequency {
	return []RecurringFrequency{
		RecurringDaily,
		RecurringWeekly,
		RecurringMonthly,
		RecurringQuarterly,
		RecurringYearly,
	}
}

func (f RecurringFrequency) String() string {
	return string(f)
}

// IsValid reports whether f is one of the known recurrence intervals
func (f RecurringFrequency) IsValid() bool {
	return contains(RecurringFrequencies(), f)
}
