package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// Request модели

// ShiftRequest запрос на создание или обновление смены
type ShiftRequest struct {
	EmployeeID int64            `json:"employeeId"`
	Date       string           `json:"date"` // YYYY-MM-DD
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	Label      *string          `json:"label,omitempty"`
	Note       *string          `json:"note,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *ShiftRequest) ToDomain() (*domain.Shift, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errors.New("date: expected YYYY-MM-DD")
	}

	shift := &domain.Shift{
		EmployeeID: r.EmployeeID,
		Date:       date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Note:       r.Note,
	}
	if r.Label != nil && strings.TrimSpace(*r.Label) != "" {
		label := strings.TrimSpace(*r.Label)
		shift.Label = &label
	}

	return shift, nil
}

// ListShiftsRequest фильтр планинга. Даты включительно
type ListShiftsRequest struct {
	EmployeeID *int64
	From       *time.Time
	To         *time.Time
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListShiftsRequest) ToDomainFilter() domain.ShiftsFilter {
	return domain.ShiftsFilter{
		EmployeeID: r.EmployeeID,
		From:       r.From,
		To:         r.To,
	}
}

// Response модели

// ShiftResponse ответ с данными смены
type ShiftResponse struct {
	ID              int64     `json:"id"`
	EmployeeID      int64     `json:"employeeId"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Label           *string   `json:"label,omitempty"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ShiftListResponse ответ со списком смен
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// Методы конвертации

// FromDomainShift конвертирует domain модель в DTO
func FromDomainShift(s *domain.Shift) *ShiftResponse {
	if s == nil {
		return nil
	}

	return &ShiftResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		Date:            s.Date.Format(domain.DateFormat),
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		DurationMinutes: s.DurationMinutes(),
		Label:           s.Label,
		Note:            s.Note,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainShiftList конвертирует список domain моделей в DTO
func FromDomainShiftList(shifts []*domain.Shift) *ShiftListResponse {
	result := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		result = append(result, *FromDomainShift(s))
	}
	return &ShiftListResponse{Shifts: result}
}
