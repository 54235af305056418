package employees

import (
	"fmt"
	"net/mail"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

func validateEmployee(e *domain.Employee) error {
	if e.FirstName == "" || e.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(e.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if !e.ContractType.IsValid() {
		return fmt.Errorf("%w: unknown contract type %q", ErrInvalidInput, e.ContractType)
	}
	if e.WeeklyHours < domain.MinWeeklyHours || e.WeeklyHours > domain.MaxWeeklyHours {
		return fmt.Errorf("%w: weekly hours must be between %d and %d", ErrInvalidInput, domain.MinWeeklyHours, domain.MaxWeeklyHours)
	}
	if e.HourlyRateCents < 0 {
		return fmt.Errorf("%w: hourly rate must not be negative", ErrInvalidInput)
	}

	// CDD и интерим заключаются на срок
	if e.ContractType.IsFixedTerm() && e.EndDate == nil {
		return fmt.Errorf("%w: %s contract requires an end date", ErrInvalidInput, e.ContractType)
	}
	if e.EndDate != nil && !e.EndDate.After(e.HireDate) {
		return fmt.Errorf("%w: end date must be after hire date", ErrInvalidInput)
	}

	return nil
}
