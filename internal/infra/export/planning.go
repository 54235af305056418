package export

import "time"

const planningSheet = "Planning"

// PlanningRow смена планинга
type PlanningRow struct {
	Date            time.Time
	Employee        string
	StartTime       string
	EndTime         string
	DurationMinutes int
	Label           string
	Note            string
}

var planningHeader = []string{
	"Date", "Jour", "Salarié", "Début", "Fin", "Durée (h)", "Libellé", "Note",
}

var frenchWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

// Planning строит xlsx выгрузку смен за период
func (e *Exporter) Planning(rows []PlanningRow) ([]byte, error) {
	f, s, err := newWorkbook(planningSheet)
	if err != nil {
		return nil, err
	}

	if err := s.writeHeader(planningHeader, 14); err != nil {
		_ = f.Close()
		return nil, err
	}

	for _, row := range rows {
		err := s.writeRow([]interface{}{
			row.Date.Format("2006-01-02"),
			frenchWeekdays[row.Date.Weekday()],
			row.Employee,
			row.StartTime,
			row.EndTime,
			hours(row.DurationMinutes),
			row.Label,
			row.Note,
		})
		if err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return finish(f)
}
