package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// validateCustomer валидирует контактные данные клиента и заметки
func validateCustomer(req *Request) error {
	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.Customer.Email); err != nil {
		return fmt.Errorf("%w: invalid customer email: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotAlignment проверяет, что почасовой интервал совпадает с сеткой слотов пространства:
// начало кратно шагу от открытия, окончание = начало + минимальная длительность + k * шаг
func validateSlotAlignment(req *Request, space *domain.SpaceConfiguration, day time.Time) error {
	if req.Type != domain.ReservationTypeHourly {
		return nil
	}

	schedule := space.OpeningHours.ForDay(day)
	step := space.SlotStep()

	if schedule.OpenTime.MinutesUntil(req.StartTime)%step != 0 {
		return fmt.Errorf("%w: start %s is not aligned to %d minutes slots", ErrInvalidTimeSlot, req.StartTime, step)
	}

	extra := req.StartTime.MinutesUntil(req.EndTime) - space.MinDuration()
	if extra < 0 || extra%step != 0 {
		return fmt.Errorf("%w: end %s is not aligned to %d minutes slots", ErrInvalidTimeSlot, req.EndTime, step)
	}

	return nil
}

// validateNotice проверяет минимальное время до начала бронирования
func validateNotice(start, now time.Time, minBookingNoticeMinutes int) error {
	minAllowed := now.Add(time.Duration(minBookingNoticeMinutes) * time.Minute)
	if start.Before(minAllowed) {
		return fmt.Errorf("%w: booking must start at least %d minutes from now", ErrInvalidTimeSlot, minBookingNoticeMinutes)
	}
	return nil
}
