package clock_out

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/employee"
	timeEntryRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/timeentry"
)

// UseCase use case для отметки ухода сотрудника
type UseCase struct {
	employeeRepo  EmployeeRepository
	timeEntryRepo TimeEntryRepository
	txManager     TransactionManager
	metrics       MetricsRecorder
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	employeeRepo EmployeeRepository,
	timeEntryRepo TimeEntryRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		employeeRepo:  employeeRepo,
		timeEntryRepo: timeEntryRepo,
		txManager:     txManager,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute закрывает открытую отметку сотрудника текущим временем
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ClockOut: employee=%d", req.EmployeeID)

	// 1. Валидация
	if req.EmployeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}

	// 2. Проверяем сотрудника (деактивированный сотрудник может закрыть свою отметку)
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("ClockOut: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("ClockOut: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now().Truncate(time.Second)

	// 3. В транзакции находим открытую отметку и закрываем ее
	var closed *domain.TimeEntry
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		running, err := uc.timeEntryRepo.GetRunning(ctx, employee.ID)
		if err != nil {
			if errors.Is(err, timeEntryRepo.ErrTimeEntryNotFound) {
				uc.logger.Warn("ClockOut: employee id=%d is not clocked in", employee.ID)
				return ErrNotClockedIn
			}
			uc.logger.Error("ClockOut: failed to get running entry for employee id=%d: %v", employee.ID, err)
			return fmt.Errorf("%w: failed to get running entry: %v", ErrInternal, err)
		}

		// Отметка ухода не может быть раньше прихода (часы сервера могли сдвинуться)
		if !now.After(running.ClockIn) {
			uc.logger.Warn("ClockOut: clock out %s is not after clock in %s for entry id=%d",
				now.Format(time.RFC3339), running.ClockIn.Format(time.RFC3339), running.ID)
			return fmt.Errorf("%w: clock out must be after clock in", ErrInvalidInput)
		}

		if err := uc.timeEntryRepo.Close(ctx, running.ID, now); err != nil {
			if errors.Is(err, timeEntryRepo.ErrTimeEntryNotFound) {
				return ErrNotClockedIn
			}
			uc.logger.Error("ClockOut: failed to close entry id=%d: %v", running.ID, err)
			return fmt.Errorf("%w: failed to close entry: %v", ErrInternal, err)
		}

		running.ClockOut = &now
		closed = running
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncClockEvent("clock_out")
	}

	uc.logger.Info("ClockOut: employee id=%d clocked out at %s after %s (entry id=%d)",
		employee.ID, now.Format(time.RFC3339), closed.Duration(), closed.ID)

	return &Response{
		Entry:    closed,
		Employee: employee.FullName(),
	}, nil
}
