package clock_in

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/employee"
	timeEntryRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/timeentry"
)

// UseCase use case для отметки прихода сотрудника
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

// Execute создает открытую отметку прихода на текущее время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ClockIn: employee=%d", req.EmployeeID)

	// 1. Валидация
	if req.EmployeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}

	// 2. Проверяем сотрудника
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("ClockIn: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("ClockIn: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	if !employee.IsActive {
		uc.logger.Warn("ClockIn: employee id=%d is inactive", req.EmployeeID)
		return nil, ErrEmployeeInactive
	}

	now := uc.timeProvider.Now().Truncate(time.Second)

	// 3. В транзакции проверяем отсутствие открытой отметки и создаем новую
	var created *domain.TimeEntry
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		running, err := uc.timeEntryRepo.GetRunning(ctx, employee.ID)
		if err == nil {
			uc.logger.Warn("ClockIn: employee id=%d already clocked in at %s (entry id=%d)",
				employee.ID, running.ClockIn.Format(time.RFC3339), running.ID)
			return ErrAlreadyClockedIn
		}
		if !errors.Is(err, timeEntryRepo.ErrTimeEntryNotFound) {
			uc.logger.Error("ClockIn: failed to get running entry for employee id=%d: %v", employee.ID, err)
			return fmt.Errorf("%w: failed to get running entry: %v", ErrInternal, err)
		}

		entry, err := uc.timeEntryRepo.Create(ctx, &domain.TimeEntry{
			EmployeeID: employee.ID,
			ClockIn:    now,
			Source:     domain.TimeEntrySourceKiosk,
			Note:       req.Note,
		})
		if err != nil {
			// Параллельный запрос успел создать открытую отметку (уникальный индекс)
			if errors.Is(err, timeEntryRepo.ErrAlreadyRunning) {
				uc.logger.Warn("ClockIn: concurrent clock in for employee id=%d", employee.ID)
				return ErrAlreadyClockedIn
			}
			uc.logger.Error("ClockIn: failed to create entry for employee id=%d: %v", employee.ID, err)
			return fmt.Errorf("%w: failed to create entry: %v", ErrInternal, err)
		}

		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncClockEvent("clock_in")
	}

	uc.logger.Info("ClockIn: employee id=%d clocked in at %s (entry id=%d)",
		employee.ID, created.ClockIn.Format(time.RFC3339), created.ID)

	return &Response{
		Entry:    created,
		Employee: employee.FullName(),
	}, nil
}
