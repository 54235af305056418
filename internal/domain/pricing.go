package domain

import (
	"math"
	"time"
)

// PriceSource origin of the HT amount of a quote
type PriceSource string

const (
	// PriceSourceLocal computed locally, remote engine disabled
	PriceSourceLocal PriceSource = "local"
	// PriceSourceRemote returned by the remote pricing engine
	PriceSourceRemote PriceSource = "remote"
	// PriceSourceFallback computed locally because the remote engine failed
	PriceSourceFallback PriceSource = "fallback"
)

// Period booked interval [Start, End)
type Period struct {
	Start time.Time
	End   time.Time
}

// PeriodEnd returns the exclusive end of a weekly or monthly booking starting at start.
// Other types return start unchanged
func PeriodEnd(t ReservationType, start time.Time) time.Time {
	switch t {
	case ReservationTypeWeekly:
		return start.AddDate(0, 0, WeeklyPeriodDays)
	case ReservationTypeMonthly:
		return MonthlyPeriodEnd(start)
	default:
		return start
	}
}

// MonthlyPeriodEnd returns the same day of the next month,
// clamped to the last day of that month: January 31 -> February 28
func MonthlyPeriodEnd(start time.Time) time.Time {
	year, month, day := start.Date()
	// нулевой день месяца m+2 - последний день месяца m+1
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, start.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month+1, day, start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
}

// PriceQuote result of a price calculation
type PriceQuote struct {
	SpaceID          int64
	RequestedType    ReservationType
	AppliedType      ReservationType
	DailyRateApplied bool
	DurationMinutes  int
	People           int
	Period           Period
	UnitPriceCents   int64
	Amounts          Amounts
	VATRatePercent   float64
	IncludeVAT       bool
	PromoCode        *string
	Source           PriceSource
}

// DisplayedTotalCents returns TTC when VAT is included, HT after discount otherwise
func (q *PriceQuote) DisplayedTotalCents() int64 {
	if q.IncludeVAT {
		return q.Amounts.TotalCents
	}
	return q.Amounts.NetCents
}

// CentsToEuros converts cents to a euro amount with two decimals
func CentsToEuros(cents int64) float64 {
	return float64(cents) / 100
}

// PercentOf returns round(amount * percent / 100)
func PercentOf(amountCents int64, percent float64) int64 {
	return int64(math.Round(float64(amountCents) * percent / 100))
}

// AppliesDailyRate returns true when an hourly duration is billed at the daily rate
func AppliesDailyRate(durationMinutes int) bool {
	return durationMinutes >= DailyRateThresholdMinutes
}
