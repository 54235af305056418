package calculate_price

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown reservation type %q", ErrInvalidInput, req.Type)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.People < 0 {
		return fmt.Errorf("%w: people must not be negative", ErrInvalidInput)
	}

	if req.Type != domain.ReservationTypeHourly {
		return nil
	}

	// Для почасовой аренды обязательны время начала и окончания
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required for hourly reservations", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !req.EndTime.IsAfter(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом (в часовом поясе коворкинга)
func validateDate(date, now time.Time, loc *time.Location) error {
	nowLocal := now.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)
	requested := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	if requested.Before(today) {
		return ErrInvalidDate
	}
	return nil
}

// validatePromoCode проверяет применимость промокода к расчету
func validatePromoCode(promo *domain.PromoCode, applied domain.ReservationType, subtotal int64, now time.Time) error {
	if !promo.IsValidAt(now) {
		return fmt.Errorf("%w: code %s is not active", ErrPromoCodeInvalid, promo.Code)
	}
	if promo.IsExhausted() {
		return fmt.Errorf("%w: code %s usage limit reached", ErrPromoCodeInvalid, promo.Code)
	}
	if !promo.AppliesTo(applied) {
		return fmt.Errorf("%w: code %s does not apply to %s reservations", ErrPromoCodeInvalid, promo.Code, applied)
	}
	if subtotal < promo.MinAmountCents {
		return fmt.Errorf("%w: minimum amount is %d cents", ErrPromoCodeInvalid, promo.MinAmountCents)
	}
	return nil
}
