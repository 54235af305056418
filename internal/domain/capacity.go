package domain

import (
	"sort"
	"time"
)

// occupancyEvent изменение числа людей в помещении в момент at
type occupancyEvent struct {
	at    time.Time
	delta int
}

// RemainingCapacity returns how many people can still be accommodated in [start, end).
// Open spaces subtract the peak number of people present at the same moment,
// private spaces are fully taken by any overlapping active reservation
func (s *SpaceConfiguration) RemainingCapacity(reservations []*Reservation, start, end time.Time) int {
	events := make([]occupancyEvent, 0, len(reservations)*2)
	for _, r := range reservations {
		if r.SpaceID != s.ID || !r.IsActive() || !r.Overlaps(start, end) {
			continue
		}
		if !s.IsSeatBased() {
			return 0
		}

		from, to := r.StartAt, r.EndAt
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		events = append(events, occupancyEvent{at: from, delta: r.People}, occupancyEvent{at: to, delta: -r.People})
	}

	// При равном времени сначала освобождение: касающиеся брони не пересекаются
	sort.Slice(events, func(i, j int) bool {
		if events[i].at.Equal(events[j].at) {
			return events[i].delta < events[j].delta
		}
		return events[i].at.Before(events[j].at)
	})

	used, peak := 0, 0
	for _, e := range events {
		used += e.delta
		if used > peak {
			peak = used
		}
	}

	remaining := s.Capacity - peak
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Fits returns true if people can book [start, end) given the existing reservations
func (s *SpaceConfiguration) Fits(reservations []*Reservation, start, end time.Time, people int) bool {
	return s.RemainingCapacity(reservations, start, end) >= people
}
