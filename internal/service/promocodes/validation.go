package promocodes

import (
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

func validatePromoCode(promo *domain.PromoCode) error {
	if !codePattern.MatchString(promo.Code) {
		return fmt.Errorf("%w: code must be 3 to %d characters of A-Z, 0-9, '_' or '-'", ErrInvalidInput, domain.MaxPromoCodeLength)
	}

	// Ровно один вид скидки
	switch {
	case promo.PercentOff != nil && promo.AmountOffCents != nil:
		return fmt.Errorf("%w: only one of percentOff and amountOffCents can be set", ErrInvalidInput)
	case promo.PercentOff != nil:
		if *promo.PercentOff < 1 || *promo.PercentOff > 100 {
			return fmt.Errorf("%w: percentOff must be between 1 and 100", ErrInvalidInput)
		}
	case promo.AmountOffCents != nil:
		if *promo.AmountOffCents <= 0 {
			return fmt.Errorf("%w: amountOffCents must be positive", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: percentOff or amountOffCents is required", ErrInvalidInput)
	}

	if promo.MinAmountCents < 0 {
		return fmt.Errorf("%w: minAmountCents must not be negative", ErrInvalidInput)
	}
	if promo.MaxUses < 0 {
		return fmt.Errorf("%w: maxUses must not be negative", ErrInvalidInput)
	}
	if promo.ValidFrom != nil && promo.ValidUntil != nil && !promo.ValidUntil.After(*promo.ValidFrom) {
		return fmt.Errorf("%w: validUntil must be after validFrom", ErrInvalidInput)
	}

	for _, t := range promo.ReservationTypes {
		if !t.IsValid() {
			return fmt.Errorf("%w: unknown reservation type %q", ErrInvalidInput, t)
		}
	}

	return nil
}

// rejectReason возвращает причину, по которой промокод нельзя применить, или пустую строку
func rejectReason(promo *domain.PromoCode, t domain.ReservationType, amount int64, now time.Time) string {
	switch {
	case !promo.IsValidAt(now):
		return "promo code is not active"
	case promo.IsExhausted():
		return "promo code usage limit reached"
	case t != "" && !promo.AppliesTo(t):
		return fmt.Sprintf("promo code does not apply to %s reservations", t)
	case amount < promo.MinAmountCents:
		return fmt.Sprintf("minimum amount is %d cents", promo.MinAmountCents)
	}
	return ""
}
