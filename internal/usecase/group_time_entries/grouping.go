package group_time_entries

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

type dayKey struct {
	employeeID int64
	date       string
}

// groupEntries раскладывает отметки по сотрудникам и дням.
// Результат не зависит от порядка входных отметок
func groupEntries(
	entries []*domain.TimeEntry,
	employees map[int64]*domain.Employee,
	shifts []*domain.Shift,
	settings Settings,
	now time.Time,
) []DayGroup {
	loc := settings.Location
	today := now.In(loc).Format(domain.DateFormat)

	byDay := make(map[dayKey][]*domain.TimeEntry)
	for _, entry := range entries {
		key := dayKey{employeeID: entry.EmployeeID, date: entry.ClockIn.In(loc).Format(domain.DateFormat)}
		byDay[key] = append(byDay[key], entry)
	}

	planned := make(map[dayKey]int)
	for _, shift := range shifts {
		key := dayKey{employeeID: shift.EmployeeID, date: shift.Date.Format(domain.DateFormat)}
		planned[key] += shift.DurationMinutes()
	}

	// Дни только с планингом тоже попадают в отчет: отсутствие видно по отклонению
	for key := range planned {
		if _, ok := byDay[key]; !ok {
			byDay[key] = nil
		}
	}

	maxDuration := time.Duration(settings.MaxShiftHours * float64(time.Hour))

	groups := make([]DayGroup, 0, len(byDay))
	for key, dayEntries := range byDay {
		date, _ := time.ParseInLocation(domain.DateFormat, key.date, loc)

		group := DayGroup{
			Date:       date,
			EmployeeID: key.employeeID,
		}
		if employee, ok := employees[key.employeeID]; ok {
			group.FirstName = employee.FirstName
			group.LastName = employee.LastName
		} else {
			group.LastName = "#" + strconv.FormatInt(key.employeeID, 10)
		}

		sorted := sortEntries(dayEntries)
		group.Entries = sorted

		errs := make(map[domain.TimeEntryError]bool)
		var worked time.Duration

		for i, entry := range sorted {
			// 1. Распределение по колонкам
			slot := newShiftSlot(entry)
			switch {
			case types.NewTimeString(entry.ClockIn.In(loc)).IsBefore(settings.Cutoff) && group.Shift1 == nil:
				group.Shift1 = slot
			case group.Shift2 == nil:
				group.Shift2 = slot
			default:
				errs[domain.TimeEntryErrTooManyEntries] = true
			}

			// 2. Открытая отметка: активна сегодня, забыта в прошлые дни
			if entry.IsRunning() {
				if key.date == today {
					group.Active = true
				} else {
					errs[domain.TimeEntryErrMissingClockOut] = true
				}
			} else if !entry.ClockOut.After(entry.ClockIn) {
				errs[domain.TimeEntryErrInvalidRange] = true
			} else {
				if maxDuration > 0 && entry.Duration() > maxDuration {
					errs[domain.TimeEntryErrTooLong] = true
				}
				worked += entry.Duration()
			}

			// 3. Пересечение с предыдущей отметкой
			if i > 0 {
				prev := sorted[i-1]
				if prev.IsRunning() || prev.ClockOut.After(entry.ClockIn) {
					errs[domain.TimeEntryErrOverlap] = true
				}
			}
		}

		group.WorkedMinutes = int(worked / time.Minute)
		group.WorkedHours = minutesToHours(group.WorkedMinutes)
		group.WorkedLabel = HoursLabel(group.WorkedMinutes)
		group.PlannedMinutes = planned[key]
		group.DeltaMinutes = group.WorkedMinutes - group.PlannedMinutes
		group.Errors = orderedErrors(errs)

		groups = append(groups, group)
	}

	sortGroups(groups)
	return groups
}

// summarize считает итоги по сотрудникам, отсортированные по фамилии и имени
func summarize(groups []DayGroup) []EmployeeSummary {
	index := make(map[int64]int)
	summary := make([]EmployeeSummary, 0)

	for _, g := range groups {
		i, ok := index[g.EmployeeID]
		if !ok {
			summary = append(summary, EmployeeSummary{
				EmployeeID: g.EmployeeID,
				FirstName:  g.FirstName,
				LastName:   g.LastName,
			})
			i = len(summary) - 1
			index[g.EmployeeID] = i
		}

		s := &summary[i]
		if len(g.Entries) > 0 {
			s.Days++
		}
		s.WorkedMinutes += g.WorkedMinutes
		s.PlannedMinutes += g.PlannedMinutes
		if g.HasErrors() {
			s.ErrorDays++
		}
	}

	for i := range summary {
		summary[i].WorkedHours = minutesToHours(summary[i].WorkedMinutes)
		summary[i].DeltaMinutes = summary[i].WorkedMinutes - summary[i].PlannedMinutes
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return lessByName(summary[i].LastName, summary[i].FirstName, summary[i].EmployeeID,
			summary[j].LastName, summary[j].FirstName, summary[j].EmployeeID)
	})

	return summary
}

// HoursLabel форматирует минуты как "7h30"
func HoursLabel(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%dh%02d", sign, minutes/60, minutes%60)
}

func minutesToHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

func newShiftSlot(entry *domain.TimeEntry) *ShiftSlot {
	return &ShiftSlot{
		EntryID:         entry.ID,
		ClockIn:         entry.ClockIn,
		ClockOut:        entry.ClockOut,
		DurationMinutes: int(entry.Duration() / time.Minute),
		Running:         entry.IsRunning(),
	}
}

func sortEntries(entries []*domain.TimeEntry) []*domain.TimeEntry {
	sorted := make([]*domain.TimeEntry, len(entries))
	copy(sorted, entries)

	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].ClockIn.Equal(sorted[j].ClockIn) {
			return sorted[i].ClockIn.Before(sorted[j].ClockIn)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// sortGroups: дата по убыванию, затем фамилия и имя
func sortGroups(groups []DayGroup) {
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return lessByName(a.LastName, a.FirstName, a.EmployeeID, b.LastName, b.FirstName, b.EmployeeID)
	})
}

func lessByName(lastA, firstA string, idA int64, lastB, firstB string, idB int64) bool {
	if lastA != lastB {
		return lastA < lastB
	}
	if firstA != firstB {
		return firstA < firstB
	}
	return idA < idB
}

var errorOrder = []domain.TimeEntryError{
	domain.TimeEntryErrMissingClockOut,
	domain.TimeEntryErrInvalidRange,
	domain.TimeEntryErrOverlap,
	domain.TimeEntryErrTooManyEntries,
	domain.TimeEntryErrTooLong,
}

func orderedErrors(set map[domain.TimeEntryError]bool) []domain.TimeEntryError {
	result := make([]domain.TimeEntryError, 0, len(set))
	for _, e := range errorOrder {
		if set[e] {
			result = append(result, e)
		}
	}
	return result
}
