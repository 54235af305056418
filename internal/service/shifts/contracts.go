package shifts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/export"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	List(ctx context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error)
	ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Shift, error)
	Update(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	Delete(ctx context.Context, id int64) error
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, filter domain.EmployeesFilter) ([]*domain.Employee, error)
}

// PlanningExporter интерфейс выгрузки планинга в xlsx
type PlanningExporter interface {
	Planning(rows []export.PlanningRow) ([]byte, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
