package group_time_entries

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// Settings параметры группировки
type Settings struct {
	Location      *time.Location   // Часовой пояс, в котором определяется дата отметки
	Cutoff        types.TimeString // Отметки до этого времени попадают в Shift 1
	MaxShiftHours float64          // Отметка длиннее считается ошибочной (too_long)
}

// Request модель запроса табеля. Даты включительно
type Request struct {
	From       time.Time
	To         time.Time
	EmployeeID *int64
}

// Response сгруппированный табель
type Response struct {
	From    time.Time
	To      time.Time
	Days    []DayGroup
	Summary []EmployeeSummary
}

// ShiftSlot отметка, попавшая в колонку Shift 1 или Shift 2
type ShiftSlot struct {
	EntryID         int64
	ClockIn         time.Time
	ClockOut        *time.Time
	DurationMinutes int
	Running         bool
}

// DayGroup отметки сотрудника за один день
type DayGroup struct {
	Date           time.Time
	EmployeeID     int64
	FirstName      string
	LastName       string
	Shift1         *ShiftSlot
	Shift2         *ShiftSlot
	Entries        []*domain.TimeEntry // Все отметки дня по порядку
	WorkedMinutes  int
	WorkedHours    float64
	WorkedLabel    string // "7h30"
	PlannedMinutes int
	DeltaMinutes   int
	Active         bool
	Errors         []domain.TimeEntryError
}

// HasErrors возвращает true, если в дне найдены аномалии
func (d *DayGroup) HasErrors() bool {
	return len(d.Errors) > 0
}

// EmployeeName возвращает "Имя Фамилия"
func (d *DayGroup) EmployeeName() string {
	return d.FirstName + " " + d.LastName
}

// EmployeeSummary итог сотрудника за период
type EmployeeSummary struct {
	EmployeeID     int64
	FirstName      string
	LastName       string
	Days           int
	WorkedMinutes  int
	WorkedHours    float64
	PlannedMinutes int
	DeltaMinutes   int
	ErrorDays      int
}
