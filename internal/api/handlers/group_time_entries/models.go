package group_time_entries

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/service/timeentries/models"
	groupTimeEntries "github.com/m04kA/SMC-CoworkingService/internal/usecase/group_time_entries"
)

// ShiftSlotResponse колонка Shift 1 / Shift 2
type ShiftSlotResponse struct {
	EntryID         int64      `json:"entryId"`
	ClockIn         time.Time  `json:"clockIn"`
	ClockOut        *time.Time `json:"clockOut,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	Running         bool       `json:"running"`
}

// DayGroupResponse строка табеля
type DayGroupResponse struct {
	Date           string                     `json:"date"`
	EmployeeID     int64                      `json:"employeeId"`
	EmployeeName   string                     `json:"employeeName"`
	FirstName      string                     `json:"firstName"`
	LastName       string                     `json:"lastName"`
	Shift1         *ShiftSlotResponse         `json:"shift1"`
	Shift2         *ShiftSlotResponse         `json:"shift2"`
	Entries        []models.TimeEntryResponse `json:"entries"`
	WorkedMinutes  int                        `json:"workedMinutes"`
	WorkedHours    float64                    `json:"workedHours"`
	WorkedLabel    string                     `json:"workedLabel"`
	PlannedMinutes int                        `json:"plannedMinutes"`
	DeltaMinutes   int                        `json:"deltaMinutes"`
	DeltaLabel     string                     `json:"deltaLabel"`
	Active         bool                       `json:"active"`
	HasErrors      bool                       `json:"hasErrors"`
	Errors         []string                   `json:"errors"`
}

// EmployeeSummaryResponse итог сотрудника за период
type EmployeeSummaryResponse struct {
	EmployeeID     int64   `json:"employeeId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Days           int     `json:"days"`
	WorkedMinutes  int     `json:"workedMinutes"`
	WorkedHours    float64 `json:"workedHours"`
	WorkedLabel    string  `json:"workedLabel"`
	PlannedMinutes int     `json:"plannedMinutes"`
	DeltaMinutes   int     `json:"deltaMinutes"`
	DeltaLabel     string  `json:"deltaLabel"`
	ErrorDays      int     `json:"errorDays"`
}

// GroupedResponse HTTP response model
type GroupedResponse struct {
	From    string                    `json:"from"`
	To      string                    `json:"to"`
	Days    []DayGroupResponse        `json:"days"`
	Summary []EmployeeSummaryResponse `json:"summary"`
}

var errMissingPeriod = errors.New("from and to are required")

// ToUseCaseRequest читает from, to и employeeId из query параметров
func ToUseCaseRequest(r *http.Request, loc *time.Location) (*groupTimeEntries.Request, error) {
	from, err := handlers.QueryDate(r, "from", loc)
	if err != nil {
		return nil, err
	}
	to, err := handlers.QueryDate(r, "to", loc)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, errMissingPeriod
	}

	employeeID, err := handlers.QueryInt64(r, "employeeId")
	if err != nil {
		return nil, err
	}

	return &groupTimeEntries.Request{
		From:       *from,
		To:         *to,
		EmployeeID: employeeID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *groupTimeEntries.Response) *GroupedResponse {
	result := &GroupedResponse{
		From:    resp.From.Format(domain.DateFormat),
		To:      resp.To.Format(domain.DateFormat),
		Days:    make([]DayGroupResponse, 0, len(resp.Days)),
		Summary: make([]EmployeeSummaryResponse, 0, len(resp.Summary)),
	}

	for i := range resp.Days {
		g := &resp.Days[i]

		errs := make([]string, 0, len(g.Errors))
		for _, e := range g.Errors {
			errs = append(errs, string(e))
		}

		result.Days = append(result.Days, DayGroupResponse{
			Date:           g.Date.Format(domain.DateFormat),
			EmployeeID:     g.EmployeeID,
			EmployeeName:   g.EmployeeName(),
			FirstName:      g.FirstName,
			LastName:       g.LastName,
			Shift1:         fromSlot(g.Shift1),
			Shift2:         fromSlot(g.Shift2),
			Entries:        models.FromDomainTimeEntryList(g.Entries).Entries,
			WorkedMinutes:  g.WorkedMinutes,
			WorkedHours:    g.WorkedHours,
			WorkedLabel:    g.WorkedLabel,
			PlannedMinutes: g.PlannedMinutes,
			DeltaMinutes:   g.DeltaMinutes,
			DeltaLabel:     groupTimeEntries.HoursLabel(g.DeltaMinutes),
			Active:         g.Active,
			HasErrors:      g.HasErrors(),
			Errors:         errs,
		})
	}

	for _, s := range resp.Summary {
		result.Summary = append(result.Summary, EmployeeSummaryResponse{
			EmployeeID:     s.EmployeeID,
			FirstName:      s.FirstName,
			LastName:       s.LastName,
			Days:           s.Days,
			WorkedMinutes:  s.WorkedMinutes,
			WorkedHours:    s.WorkedHours,
			WorkedLabel:    groupTimeEntries.HoursLabel(s.WorkedMinutes),
			PlannedMinutes: s.PlannedMinutes,
			DeltaMinutes:   s.DeltaMinutes,
			DeltaLabel:     groupTimeEntries.HoursLabel(s.DeltaMinutes),
			ErrorDays:      s.ErrorDays,
		})
	}

	return result
}

func fromSlot(slot *groupTimeEntries.ShiftSlot) *ShiftSlotResponse {
	if slot == nil {
		return nil
	}
	return &ShiftSlotResponse{
		EntryID:         slot.EntryID,
		ClockIn:         slot.ClockIn,
		ClockOut:        slot.ClockOut,
		DurationMinutes: slot.DurationMinutes,
		Running:         slot.Running,
	}
}
