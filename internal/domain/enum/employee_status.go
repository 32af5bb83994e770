package enum

// EmployeeStatus represents the employment state of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "Active"
	EmployeeStatusInactive   EmployeeStatus = "Inactive"
	EmployeeStatusOnLeave    EmployeeStatus = "On Leave"
	EmployeeStatusTerminated EmployeeStatus = "Terminated"
)

// EmployeeStatuses lists every accepted employee status
func EmployeeStatuses() []EmployeeStatus {
	return []EmployeeStatus{
		EmployeeStatusActive,
		EmployeeStatusInactive,
		EmployeeStatusOnLeave,
		EmployeeStatusTerminated,
	}
}

func (s EmployeeStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known employee statuses
func (s EmployeeStatus) IsValid() bool {
	return contains(EmployeeStatuses(), s)
}
