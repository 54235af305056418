package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Type != "" && !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown reservation type %q", ErrInvalidInput, req.Type)
	}

	if req.People < 0 {
		return fmt.Errorf("%w: people must not be negative", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня в часовом поясе коворкинга
func isDateInPast(day, now time.Time, loc *time.Location) bool {
	nowLocal := now.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)
	return day.Before(today)
}
