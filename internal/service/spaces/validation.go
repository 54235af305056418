package spaces

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

const minutesPerDay = 24 * 60

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSpace проверяет конфигурацию пространства перед сохранением
func validateSpace(space *domain.SpaceConfiguration) error {
	if space.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if space.Slug == "" || !slugPattern.MatchString(space.Slug) {
		return fmt.Errorf("%w: slug must contain lowercase letters, digits and hyphens", ErrInvalidInput)
	}
	if !space.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, space.Kind)
	}
	if space.Capacity < domain.MinCapacity || space.Capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}
	if hasNegativePrice(space.Prices) {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}
	if space.DepositCents < 0 {
		return fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
	}

	step := space.SlotStepMinutes
	if step < domain.MinSlotStepMinutes || step > domain.MaxSlotStepMinutes || minutesPerDay%step != 0 {
		return fmt.Errorf("%w: slot step must be between %d and %d minutes and divide 24h",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}
	if space.MinDurationMinutes < step || space.MinDurationMinutes%step != 0 {
		return fmt.Errorf("%w: min duration must be a multiple of the slot step", ErrInvalidInput)
	}
	if space.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("%w: booking notice must not be negative", ErrInvalidInput)
	}

	if err := validateOpeningHours(space.OpeningHours); err != nil {
		return err
	}

	return validatePriceTiers(space.PriceTiers, space.Capacity)
}

func validateOpeningHours(hours domain.OpeningHours) error {
	for i, day := range hours.Days() {
		if !day.IsOpen {
			continue
		}
		if err := day.OpenTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d open time: %v", ErrInvalidOpeningHours, i+1, err)
		}
		if err := day.CloseTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d close time: %v", ErrInvalidOpeningHours, i+1, err)
		}
		if !day.OpenTime.IsBefore(day.CloseTime) {
			return fmt.Errorf("%w: day %d opens at %s and closes at %s", ErrInvalidOpeningHours, i+1, day.OpenTime, day.CloseTime)
		}
	}
	return nil
}

// validatePriceTiers проверяет, что уровни не пересекаются по числу людей
func validatePriceTiers(tiers []domain.PriceTier, capacity int) error {
	sorted := make([]domain.PriceTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinPeople < sorted[j].MinPeople })

	for i, tier := range sorted {
		if tier.MinPeople < 1 || tier.MinPeople > capacity {
			return fmt.Errorf("%w: tier min people must be between 1 and capacity", ErrInvalidPriceTiers)
		}
		if tier.MaxPeople != 0 && tier.MaxPeople < tier.MinPeople {
			return fmt.Errorf("%w: tier max people is lower than min people", ErrInvalidPriceTiers)
		}
		if hasNegativePrice(tier.Prices) {
			return fmt.Errorf("%w: tier prices must not be negative", ErrInvalidPriceTiers)
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if prev.MaxPeople == 0 || prev.MaxPeople >= tier.MinPeople {
			return fmt.Errorf("%w: tiers starting at %d and %d people overlap", ErrInvalidPriceTiers, prev.MinPeople, tier.MinPeople)
		}
	}
	return nil
}

func hasNegativePrice(p domain.Prices) bool {
	return p.HourlyCents < 0 || p.DailyCents < 0 || p.WeeklyCents < 0 || p.MonthlyCents < 0
}
