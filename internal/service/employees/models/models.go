package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модели

// EmployeeRequest запрос на создание или обновление сотрудника.
// Даты передаются в формате YYYY-MM-DD
type EmployeeRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Position        string  `json:"position"`
	ContractType    string  `json:"contractType"`
	WeeklyHours     float64 `json:"weeklyHours"`
	HourlyRateCents int64   `json:"hourlyRateCents"`
	HireDate        string  `json:"hireDate"`
	EndDate         *string `json:"endDate,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *EmployeeRequest) ToDomain() (*domain.Employee, error) {
	hireDate, err := time.Parse(domain.DateFormat, r.HireDate)
	if err != nil {
		return nil, errors.New("hireDate: expected YYYY-MM-DD")
	}

	var endDate *time.Time
	if r.EndDate != nil && *r.EndDate != "" {
		parsed, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, errors.New("endDate: expected YYYY-MM-DD")
		}
		endDate = &parsed
	}

	employee := &domain.Employee{
		FirstName:       strings.TrimSpace(r.FirstName),
		LastName:        strings.TrimSpace(r.LastName),
		Email:           strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:           r.Phone,
		Position:        strings.TrimSpace(r.Position),
		ContractType:    domain.ContractType(r.ContractType),
		WeeklyHours:     r.WeeklyHours,
		HourlyRateCents: r.HourlyRateCents,
		HireDate:        hireDate,
		EndDate:         endDate,
		IsActive:        true,
	}
	if r.IsActive != nil {
		employee.IsActive = *r.IsActive
	}

	return employee, nil
}

// Response модели

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID              int64     `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	Position        string    `json:"position"`
	ContractType    string    `json:"contractType"`
	WeeklyHours     float64   `json:"weeklyHours"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	HireDate        string    `json:"hireDate"`
	EndDate         *string   `json:"endDate,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// Методы конвертации

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}

	resp := &EmployeeResponse{
		ID:              e.ID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		FullName:        e.FullName(),
		Email:           e.Email,
		Phone:           e.Phone,
		Position:        e.Position,
		ContractType:    string(e.ContractType),
		WeeklyHours:     e.WeeklyHours,
		HourlyRateCents: e.HourlyRateCents,
		HireDate:        e.HireDate.Format(domain.DateFormat),
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	if e.EndDate != nil {
		endDate := e.EndDate.Format(domain.DateFormat)
		resp.EndDate = &endDate
	}

	return resp
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, *FromDomainEmployee(e))
	}
	return &EmployeeListResponse{Employees: result}
}
