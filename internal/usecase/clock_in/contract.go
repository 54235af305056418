package clock_in

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

// TimeEntryRepository интерфейс репозитория отметок
type TimeEntryRepository interface {
	GetRunning(ctx context.Context, employeeID int64) (*domain.TimeEntry, error)
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для бизнес-метрик
type MetricsRecorder interface {
	IncClockEvent(event string)
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
