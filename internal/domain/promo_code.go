package domain

import "time"

// PromoCode discount code applicable to reservations
type PromoCode struct {
	ID               int64
	Code             string
	Description      *string
	PercentOff       *float64
	AmountOffCents   *int64
	MinAmountCents   int64
	ValidFrom        *time.Time
	ValidUntil       *time.Time
	MaxUses          int // 0 = unlimited
	UsedCount        int
	ReservationTypes []ReservationType // empty = all types
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsValidAt returns true if the code is active and inside its validity window
func (p *PromoCode) IsValidAt(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && now.After(*p.ValidUntil) {
		return false
	}
	return true
}

// IsExhausted returns true when the usage limit is reached
func (p *PromoCode) IsExhausted() bool {
	return p.MaxUses > 0 && p.UsedCount >= p.MaxUses
}

// AppliesTo returns true if the code can be used for the reservation type
func (p *PromoCode) AppliesTo(t ReservationType) bool {
	if len(p.ReservationTypes) == 0 {
		return true
	}
	for _, allowed := range p.ReservationTypes {
		if allowed == t {
			return true
		}
	}
	return false
}

// DiscountFor returns the discount for an HT amount, capped at the amount
func (p *PromoCode) DiscountFor(amountCents int64) int64 {
	var discount int64
	switch {
	case p.PercentOff != nil:
		discount = PercentOf(amountCents, *p.PercentOff)
	case p.AmountOffCents != nil:
		discount = *p.AmountOffCents
	}
	if discount > amountCents {
		return amountCents
	}
	if discount < 0 {
		return 0
	}
	return discount
}
