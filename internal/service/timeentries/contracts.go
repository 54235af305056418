package timeentries

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// TimeEntryRepository интерфейс репозитория отметок
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	List(ctx context.Context, filter domain.TimeEntriesFilter) ([]*domain.TimeEntry, error)
	ListRunningBefore(ctx context.Context, before time.Time) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
