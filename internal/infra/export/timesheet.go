package export

import (
	"strings"
	"time"
)

const (
	timesheetSheet = "Pointages"
	summarySheet   = "Synthèse"
)

// TimesheetDay строка табеля: сотрудник за один день
type TimesheetDay struct {
	Date           time.Time
	Employee       string
	Shift1         string // "08:58 - 12:31"
	Shift2         string
	WorkedMinutes  int
	PlannedMinutes int
	DeltaMinutes   int
	WorkedLabel    string // "7h30"
	Active         bool
	Errors         []string
}

// TimesheetSummary итог по сотруднику за период
type TimesheetSummary struct {
	Employee       string
	Days           int
	WorkedMinutes  int
	PlannedMinutes int
	ErrorDays      int
}

var timesheetHeader = []string{
	"Date", "Salarié", "Shift 1", "Shift 2", "Heures", "Total (h)", "Prévu (h)", "Écart (h)", "En cours", "Erreurs",
}

var summaryHeader = []string{
	"Salarié", "Jours", "Travaillé (h)", "Prévu (h)", "Écart (h)", "Jours en erreur",
}

// Timesheet строит xlsx табель: лист по дням и лист итогов по сотрудникам.
// Дни с ошибками подсвечиваются
func (e *Exporter) Timesheet(days []TimesheetDay, summary []TimesheetSummary) ([]byte, error) {
	f, s, err := newWorkbook(timesheetSheet)
	if err != nil {
		return nil, err
	}

	if err := s.writeHeader(timesheetHeader, 16); err != nil {
		_ = f.Close()
		return nil, err
	}

	for _, day := range days {
		active := ""
		if day.Active {
			active = "oui"
		}

		err := s.writeRow([]interface{}{
			day.Date.Format("2006-01-02"),
			day.Employee,
			day.Shift1,
			day.Shift2,
			day.WorkedLabel,
			hours(day.WorkedMinutes),
			hours(day.PlannedMinutes),
			hours(day.DeltaMinutes),
			active,
			strings.Join(day.Errors, ", "),
		})
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		if len(day.Errors) > 0 {
			if err := s.markLastRow(len(timesheetHeader)); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	totals, err := addSheet(f, summarySheet)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := totals.writeHeader(summaryHeader, 18); err != nil {
		_ = f.Close()
		return nil, err
	}

	for _, row := range summary {
		err := totals.writeRow([]interface{}{
			row.Employee,
			row.Days,
			hours(row.WorkedMinutes),
			hours(row.PlannedMinutes),
			hours(row.WorkedMinutes - row.PlannedMinutes),
			row.ErrorDays,
		})
		if err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return finish(f)
}
