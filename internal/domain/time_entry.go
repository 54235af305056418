package domain

import "time"

// TimeEntrySource where a time entry was recorded
type TimeEntrySource string

const (
	TimeEntrySourceKiosk TimeEntrySource = "kiosk"
	TimeEntrySourceAdmin TimeEntrySource = "admin"
)

// TimeEntry a clock-in/clock-out record. ClockOut = nil means the shift is running
type TimeEntry struct {
	ID         int64
	EmployeeID int64
	ClockIn    time.Time
	ClockOut   *time.Time
	Source     TimeEntrySource
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsRunning returns true while the employee has not clocked out
func (e *TimeEntry) IsRunning() bool {
	return e.ClockOut == nil
}

// Duration returns the worked duration of a closed entry, 0 otherwise
func (e *TimeEntry) Duration() time.Duration {
	if e.ClockOut == nil {
		return 0
	}
	return e.ClockOut.Sub(e.ClockIn)
}

// TimeEntriesFilter filter for time entries
type TimeEntriesFilter struct {
	EmployeeID *int64
	From       *time.Time // clock-in >= From
	To         *time.Time // clock-in < To
	OnlyOpen   bool
}

// TimeEntryError anomaly detected on a grouped day
type TimeEntryError string

const (
	TimeEntryErrMissingClockOut TimeEntryError = "missing_clock_out"
	TimeEntryErrInvalidRange    TimeEntryError = "invalid_range"
	TimeEntryErrOverlap         TimeEntryError = "overlap"
	TimeEntryErrTooManyEntries  TimeEntryError = "too_many_entries"
	TimeEntryErrTooLong         TimeEntryError = "too_long"
)
