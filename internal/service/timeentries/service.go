package timeentries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/employee"
	timeEntryRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/timeentry"
	"github.com/m04kA/SMC-CoworkingService/internal/service/timeentries/models"
)

// Service сервис ручного управления отметками (админка)
type Service struct {
	timeEntryRepo TimeEntryRepository
	employeeRepo  EmployeeRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса отметок
func NewService(
	timeEntryRepo TimeEntryRepository,
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		timeEntryRepo: timeEntryRepo,
		employeeRepo:  employeeRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// List получает отметки по фильтру
func (s *Service) List(ctx context.Context, req *models.ListTimeEntriesRequest) (*models.TimeEntryListResponse, error) {
	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("List: invalid range from=%s to=%s", req.From, req.To)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	entries, err := s.timeEntryRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeEntryList(entries), nil
}

// Create создает отметку вручную (источник admin)
func (s *Service) Create(ctx context.Context, req *models.TimeEntryRequest) (*models.TimeEntryResponse, error) {
	entry := req.ToDomain()
	if err := s.validate(entry); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkEmployee(ctx, "Create", entry.EmployeeID); err != nil {
		return nil, err
	}

	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return nil, s.mapRepoError("Create", 0, err)
	}

	s.logger.Info("Create: time entry id=%d for employee=%d created manually", created.ID, created.EmployeeID)
	return models.FromDomainTimeEntry(created), nil
}

// Update исправляет отметку. Источник исходной отметки сохраняется
func (s *Service) Update(ctx context.Context, id int64, req *models.TimeEntryRequest) (*models.TimeEntryResponse, error) {
	patch := req.ToDomain()
	if err := s.validate(patch); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.TimeEntry
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.timeEntryRepo.GetByID(ctx, id)
		if err != nil {
			return s.mapRepoError("Update", id, err)
		}

		if existing.EmployeeID != patch.EmployeeID {
			if err := s.checkEmployee(ctx, "Update", patch.EmployeeID); err != nil {
				return err
			}
		}

		existing.EmployeeID = patch.EmployeeID
		existing.ClockIn = patch.ClockIn
		existing.ClockOut = patch.ClockOut
		existing.Note = patch.Note

		result, err := s.timeEntryRepo.Update(ctx, existing)
		if err != nil {
			return s.mapRepoError("Update", id, err)
		}
		updated = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: time entry id=%d updated", id)
	return models.FromDomainTimeEntry(updated), nil
}

// Delete удаляет отметку
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.timeEntryRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: time entry id=%d deleted", id)
	return nil
}

// ListForgotten возвращает открытые отметки, начатые раньше чем maxAge назад
func (s *Service) ListForgotten(ctx context.Context, maxAge time.Duration) ([]*domain.TimeEntry, error) {
	before := s.timeProvider.Now().Add(-maxAge)

	entries, err := s.timeEntryRepo.ListRunningBefore(ctx, before)
	if err != nil {
		s.logger.Error("ListForgotten: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForgotten - repository error: %v", ErrInternal, err)
	}

	return entries, nil
}

func (s *Service) validate(entry *domain.TimeEntry) error {
	if entry.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	if entry.ClockIn.IsZero() {
		return fmt.Errorf("%w: clockIn is required", ErrInvalidInput)
	}
	if entry.ClockIn.After(s.timeProvider.Now()) {
		return fmt.Errorf("%w: clockIn must not be in the future", ErrInvalidInput)
	}
	if entry.ClockOut != nil && !entry.ClockOut.After(entry.ClockIn) {
		return fmt.Errorf("%w: clockOut must be after clockIn", ErrInvalidInput)
	}
	return nil
}

func (s *Service) checkEmployee(ctx context.Context, op string, employeeID int64) error {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("%s: employee id=%d not found", op, employeeID)
			return ErrEmployeeNotFound
		}
		s.logger.Error("%s: failed to get employee id=%d: %v", op, employeeID, err)
		return fmt.Errorf("%w: %s - failed to get employee: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, timeEntryRepo.ErrTimeEntryNotFound):
		s.logger.Warn("%s: time entry id=%d not found", op, id)
		return ErrTimeEntryNotFound
	case errors.Is(err, timeEntryRepo.ErrAlreadyRunning):
		s.logger.Warn("%s: employee already has a running entry", op)
		return ErrAlreadyRunning
	}
	s.logger.Error("%s: repository error for time entry id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
