package group_time_entries

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/export"
)

// TimeEntryRepository интерфейс репозитория отметок
type TimeEntryRepository interface {
	List(ctx context.Context, filter domain.TimeEntriesFilter) ([]*domain.TimeEntry, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	List(ctx context.Context, filter domain.EmployeesFilter) ([]*domain.Employee, error)
}

// ShiftRepository интерфейс репозитория планинга
type ShiftRepository interface {
	List(ctx context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error)
}

// TimesheetExporter интерфейс выгрузки табеля в xlsx
type TimesheetExporter interface {
	Timesheet(days []export.TimesheetDay, summary []export.TimesheetSummary) ([]byte, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
