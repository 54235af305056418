package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модели

// TimeEntryRequest запрос на ручное создание или исправление отметки
type TimeEntryRequest struct {
	EmployeeID int64      `json:"employeeId"`
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut,omitempty"`
	Note       *string    `json:"note,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *TimeEntryRequest) ToDomain() *domain.TimeEntry {
	entry := &domain.TimeEntry{
		EmployeeID: r.EmployeeID,
		ClockIn:    r.ClockIn.Truncate(time.Second),
		Source:     domain.TimeEntrySourceAdmin,
	}
	if r.ClockOut != nil {
		clockOut := r.ClockOut.Truncate(time.Second)
		entry.ClockOut = &clockOut
	}
	if r.Note != nil && strings.TrimSpace(*r.Note) != "" {
		note := strings.TrimSpace(*r.Note)
		entry.Note = &note
	}
	return entry
}

// ListTimeEntriesRequest фильтр списка отметок
type ListTimeEntriesRequest struct {
	EmployeeID *int64
	From       *time.Time
	To         *time.Time
	OnlyOpen   bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListTimeEntriesRequest) ToDomainFilter() domain.TimeEntriesFilter {
	return domain.TimeEntriesFilter{
		EmployeeID: r.EmployeeID,
		From:       r.From,
		To:         r.To,
		OnlyOpen:   r.OnlyOpen,
	}
}

// Response модели

// TimeEntryResponse ответ с данными отметки
type TimeEntryResponse struct {
	ID              int64      `json:"id"`
	EmployeeID      int64      `json:"employeeId"`
	ClockIn         time.Time  `json:"clockIn"`
	ClockOut        *time.Time `json:"clockOut,omitempty"`
	Running         bool       `json:"running"`
	DurationMinutes int        `json:"durationMinutes"`
	Source          string     `json:"source"`
	Note            *string    `json:"note,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// TimeEntryListResponse ответ со списком отметок
type TimeEntryListResponse struct {
	Entries []TimeEntryResponse `json:"entries"`
}

// Методы конвертации

// FromDomainTimeEntry конвертирует domain модель в DTO
func FromDomainTimeEntry(e *domain.TimeEntry) *TimeEntryResponse {
	if e == nil {
		return nil
	}

	return &TimeEntryResponse{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		ClockIn:         e.ClockIn,
		ClockOut:        e.ClockOut,
		Running:         e.IsRunning(),
		DurationMinutes: int(e.Duration() / time.Minute),
		Source:          string(e.Source),
		Note:            e.Note,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// FromDomainTimeEntryList конвертирует список domain моделей в DTO
func FromDomainTimeEntryList(entries []*domain.TimeEntry) *TimeEntryListResponse {
	result := make([]TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, *FromDomainTimeEntry(e))
	}
	return &TimeEntryListResponse{Entries: result}
}
