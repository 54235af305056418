package domain

import "time"

// ContractType employment contract type
type ContractType string

const (
	ContractCDI        ContractType = "cdi"
	ContractCDD        ContractType = "cdd"
	ContractInterim    ContractType = "interim"
	ContractApprentice ContractType = "apprentice"
	ContractIntern     ContractType = "intern"
	ContractFreelance  ContractType = "freelance"
)

// ContractTypes all known contract types
var ContractTypes = []ContractType{
	ContractCDI,
	ContractCDD,
	ContractInterim,
	ContractApprentice,
	ContractIntern,
	ContractFreelance,
}

// IsValid returns true for a known contract type
func (c ContractType) IsValid() bool {
	for _, known := range ContractTypes {
		if c == known {
			return true
		}
	}
	return false
}

// IsFixedTerm returns true for contracts that require an end date
func (c ContractType) IsFixedTerm() bool {
	return c == ContractCDD || c == ContractInterim
}

// Employee staff member of the coworking space
type Employee struct {
	ID              int64
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	Position        string
	ContractType    ContractType
	WeeklyHours     float64
	HourlyRateCents int64
	HireDate        time.Time
	EndDate         *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName returns "First Last"
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeesFilter filter for the employee list
type EmployeesFilter struct {
	OnlyActive bool
}
