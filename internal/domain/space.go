package domain

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// SpaceKind defines how the capacity of a space is consumed
type SpaceKind string

const (
	// SpaceKindOpenSpace seat based: people of overlapping reservations are summed
	SpaceKindOpenSpace SpaceKind = "open_space"
	// SpaceKindPrivate room based: a single active reservation at a time
	SpaceKindPrivate SpaceKind = "private"
)

// IsValid returns true for a known space kind
func (k SpaceKind) IsValid() bool {
	return k == SpaceKindOpenSpace || k == SpaceKindPrivate
}

// DaySchedule opening hours of a single weekday
type DaySchedule struct {
	IsOpen    bool             `json:"isOpen"`
	OpenTime  types.TimeString `json:"openTime,omitempty"`
	CloseTime types.TimeString `json:"closeTime,omitempty"`
}

// OpenMinutes returns the number of minutes the space is open on that day
func (d DaySchedule) OpenMinutes() int {
	if !d.IsOpen {
		return 0
	}
	return d.OpenTime.MinutesUntil(d.CloseTime)
}

// OpeningHours weekly opening hours of a space
type OpeningHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForDay returns the schedule of the weekday of the given date
func (o OpeningHours) ForDay(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return o.Monday
	case time.Tuesday:
		return o.Tuesday
	case time.Wednesday:
		return o.Wednesday
	case time.Thursday:
		return o.Thursday
	case time.Friday:
		return o.Friday
	case time.Saturday:
		return o.Saturday
	case time.Sunday:
		return o.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// Days returns all weekday schedules starting from Monday
func (o OpeningHours) Days() []DaySchedule {
	return []DaySchedule{o.Monday, o.Tuesday, o.Wednesday, o.Thursday, o.Friday, o.Saturday, o.Sunday}
}

// HasOpenDay returns true if at least one weekday is open
func (o OpeningHours) HasOpenDay() bool {
	for _, day := range o.Days() {
		if day.IsOpen {
			return true
		}
	}
	return false
}

// Prices rates in cents, excluding VAT
type Prices struct {
	HourlyCents  int64 `json:"hourlyCents"`
	DailyCents   int64 `json:"dailyCents"`
	WeeklyCents  int64 `json:"weeklyCents"`
	MonthlyCents int64 `json:"monthlyCents"`
}

// ForType returns the rate for a reservation type
func (p Prices) ForType(t ReservationType) int64 {
	switch t {
	case ReservationTypeHourly:
		return p.HourlyCents
	case ReservationTypeDaily:
		return p.DailyCents
	case ReservationTypeWeekly:
		return p.WeeklyCents
	case ReservationTypeMonthly:
		return p.MonthlyCents
	default:
		return 0
	}
}

// PriceTier rates applied to a party size range.
// MaxPeople = 0 means no upper bound. A zero rate falls back to the base price
type PriceTier struct {
	MinPeople int `json:"minPeople"`
	MaxPeople int `json:"maxPeople"`
	Prices
}

// Covers returns true if the tier applies to the given party size
func (t PriceTier) Covers(people int) bool {
	if people < t.MinPeople {
		return false
	}
	return t.MaxPeople == 0 || people <= t.MaxPeople
}

// SpaceConfiguration a bookable coworking space (desk area, meeting room, office)
type SpaceConfiguration struct {
	ID                      int64
	Slug                    string
	Name                    string
	Description             *string
	Kind                    SpaceKind
	Capacity                int
	Prices                  Prices
	PriceTiers              []PriceTier
	SlotStepMinutes         int
	MinDurationMinutes      int
	MinBookingNoticeMinutes int
	DepositCents            int64
	OpeningHours            OpeningHours
	IsActive                bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// RatesFor returns the effective rates for a party size: the first covering tier
// with a non-zero price wins, otherwise the base price is used
func (s *SpaceConfiguration) RatesFor(people int) Prices {
	rates := s.Prices
	for _, tier := range s.PriceTiers {
		if !tier.Covers(people) {
			continue
		}
		if tier.HourlyCents > 0 {
			rates.HourlyCents = tier.HourlyCents
		}
		if tier.DailyCents > 0 {
			rates.DailyCents = tier.DailyCents
		}
		if tier.WeeklyCents > 0 {
			rates.WeeklyCents = tier.WeeklyCents
		}
		if tier.MonthlyCents > 0 {
			rates.MonthlyCents = tier.MonthlyCents
		}
		break
	}
	return rates
}

// RequiresDeposit returns true if a card hold is taken for reservations of this space
func (s *SpaceConfiguration) RequiresDeposit() bool {
	return s.DepositCents > 0
}

// IsSeatBased returns true for spaces where the capacity is shared between reservations
func (s *SpaceConfiguration) IsSeatBased() bool {
	return s.Kind == SpaceKindOpenSpace
}

// SlotStep returns the slot step with the default applied
func (s *SpaceConfiguration) SlotStep() int {
	if s.SlotStepMinutes <= 0 {
		return DefaultSlotStepMinutes
	}
	return s.SlotStepMinutes
}

// MinDuration returns the minimal hourly duration with the default applied
func (s *SpaceConfiguration) MinDuration() int {
	if s.MinDurationMinutes <= 0 {
		return DefaultMinDurationMinutes
	}
	return s.MinDurationMinutes
}
