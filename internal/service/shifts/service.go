package shifts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/export"
	employeeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/employee"
	shiftRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-CoworkingService/internal/service/shifts/models"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

// maxRangeDays максимальный период выборки планинга
const maxRangeDays = 92

// Service сервис планинга смен
type Service struct {
	shiftRepo    ShiftRepository
	employeeRepo EmployeeRepository
	exporter     PlanningExporter
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(
	shiftRepo ShiftRepository,
	employeeRepo EmployeeRepository,
	exporter PlanningExporter,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		exporter:     exporter,
		txManager:    txManager,
		logger:       logger,
	}
}

// List получает смены по периоду и сотруднику
func (s *Service) List(ctx context.Context, req *models.ListShiftsRequest) (*models.ShiftListResponse, error) {
	if err := validateRange(req); err != nil {
		s.logger.Warn("List: %v", err)
		return nil, err
	}

	shifts, err := s.shiftRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShiftList(shifts), nil
}

// Create создает смену. Смены одного сотрудника в один день не должны пересекаться
func (s *Service) Create(ctx context.Context, req *models.ShiftRequest) (*models.ShiftResponse, error) {
	shift, err := s.prepare(ctx, "Create", req)
	if err != nil {
		return nil, err
	}

	var created *domain.Shift
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkOverlap(ctx, shift); err != nil {
			return err
		}

		result, err := s.shiftRepo.Create(ctx, shift)
		if err != nil {
			s.logger.Error("Create: repository error: %v", err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		created = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: shift id=%d for employee=%d on %s %s-%s",
		created.ID, created.EmployeeID, created.Date.Format(domain.DateFormat), created.StartTime, created.EndTime)
	return models.FromDomainShift(created), nil
}

// Update обновляет смену
func (s *Service) Update(ctx context.Context, id int64, req *models.ShiftRequest) (*models.ShiftResponse, error) {
	shift, err := s.prepare(ctx, "Update", req)
	if err != nil {
		return nil, err
	}
	shift.ID = id

	var updated *domain.Shift
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
			return s.mapRepoError("Update", id, err)
		}

		if err := s.checkOverlap(ctx, shift); err != nil {
			return err
		}

		result, err := s.shiftRepo.Update(ctx, shift)
		if err != nil {
			return s.mapRepoError("Update", id, err)
		}
		updated = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainShift(updated), nil
}

// Delete удаляет смену
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: shift id=%d deleted", id)
	return nil
}

// Export выгружает планинг периода в xlsx
func (s *Service) Export(ctx context.Context, req *models.ListShiftsRequest) ([]byte, error) {
	if err := validateRange(req); err != nil {
		s.logger.Warn("Export: %v", err)
		return nil, err
	}

	shifts, err := s.shiftRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return nil, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	employees, err := s.employeeRepo.List(ctx, domain.EmployeesFilter{})
	if err != nil {
		s.logger.Error("Export: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: Export - failed to list employees: %v", ErrInternal, err)
	}

	names := make(map[int64]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FullName()
	}

	rows := make([]export.PlanningRow, 0, len(shifts))
	for _, shift := range shifts {
		rows = append(rows, export.PlanningRow{
			Date:            shift.Date,
			Employee:        names[shift.EmployeeID],
			StartTime:       shift.StartTime.String(),
			EndTime:         shift.EndTime.String(),
			DurationMinutes: shift.DurationMinutes(),
			Label:           ptr.Value(shift.Label),
			Note:            ptr.Value(shift.Note),
		})
	}

	data, err := s.exporter.Planning(rows)
	if err != nil {
		s.logger.Error("Export: failed to build workbook: %v", err)
		return nil, fmt.Errorf("%w: Export - build workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Export: exported %d shifts", len(rows))
	return data, nil
}

// prepare валидирует запрос и проверяет сотрудника
func (s *Service) prepare(ctx context.Context, op string, req *models.ShiftRequest) (*domain.Shift, error) {
	shift, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("%s: invalid request: %v", op, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateShift(shift); err != nil {
		s.logger.Warn("%s: validation failed: %v", op, err)
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, shift.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("%s: employee id=%d not found", op, shift.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("%s: failed to get employee id=%d: %v", op, shift.EmployeeID, err)
		return nil, fmt.Errorf("%w: %s - failed to get employee: %v", ErrInternal, op, err)
	}
	if !employee.IsActive {
		s.logger.Warn("%s: employee id=%d is inactive", op, shift.EmployeeID)
		return nil, ErrEmployeeInactive
	}

	return shift, nil
}

// checkOverlap проверяет пересечение с другими сменами сотрудника в этот день
func (s *Service) checkOverlap(ctx context.Context, shift *domain.Shift) error {
	existing, err := s.shiftRepo.ListByEmployeeAndDate(ctx, shift.EmployeeID, shift.Date)
	if err != nil {
		s.logger.Error("checkOverlap: repository error: %v", err)
		return fmt.Errorf("%w: checkOverlap - repository error: %v", ErrInternal, err)
	}

	for _, other := range existing {
		if other.ID == shift.ID {
			continue
		}
		if shift.Overlaps(other) {
			s.logger.Warn("checkOverlap: shift %s-%s overlaps shift id=%d of employee=%d",
				shift.StartTime, shift.EndTime, other.ID, shift.EmployeeID)
			return fmt.Errorf("%w: %s-%s", ErrShiftOverlap, other.StartTime, other.EndTime)
		}
	}
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, shiftRepo.ErrShiftNotFound) {
		s.logger.Warn("%s: shift id=%d not found", op, id)
		return ErrShiftNotFound
	}
	s.logger.Error("%s: repository error for shift id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateShift(shift *domain.Shift) error {
	if shift.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	if err := shift.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := shift.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if !shift.StartTime.IsBefore(shift.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	return nil
}

func validateRange(req *models.ListShiftsRequest) error {
	if req.From == nil || req.To == nil {
		return nil
	}
	if req.To.Before(*req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if req.To.Sub(*req.From) > maxRangeDays*24*time.Hour {
		return fmt.Errorf("%w: period must not exceed %d days", ErrInvalidInput, maxRangeDays)
	}
	return nil
}
