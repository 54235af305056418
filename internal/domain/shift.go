package domain

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// Shift a planned work slot of an employee (planning)
type Shift struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Label      *string
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DurationMinutes returns the planned duration
func (s *Shift) DurationMinutes() int {
	return s.StartTime.MinutesUntil(s.EndTime)
}

// Overlaps returns true if both shifts are on the same day and intersect.
// Touching shifts do not overlap
func (s *Shift) Overlaps(other *Shift) bool {
	if !SameDay(s.Date, other.Date) {
		return false
	}
	return s.StartTime.IsBefore(other.EndTime) && s.EndTime.IsAfter(other.StartTime)
}

// ShiftsFilter filter for planning queries
type ShiftsFilter struct {
	EmployeeID *int64
	From       *time.Time // inclusive
	To         *time.Time // inclusive
}

// SameDay returns true if both dates are the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly truncates a time to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
