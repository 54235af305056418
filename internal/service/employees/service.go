package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-CoworkingService/internal/service/employees/models"
)

// Service сервис для работы с сотрудниками (HR)
type Service struct {
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeeRepo EmployeeRepository, logger Logger) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// List получает сотрудников
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.EmployeeListResponse, error) {
	employees, err := s.employeeRepo.List(ctx, domain.EmployeesFilter{OnlyActive: onlyActive})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeList(employees), nil
}

// Get получает сотрудника по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", id, err)
	}

	return models.FromDomainEmployee(employee), nil
}

// Create создает сотрудника
func (s *Service) Create(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	employee, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateEmployee(employee); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmailExists) {
			s.logger.Warn("Create: email %s already exists", employee.Email)
			return nil, ErrEmailExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: employee id=%d created (%s)", created.ID, created.ContractType)
	return models.FromDomainEmployee(created), nil
}

// Update обновляет сотрудника
func (s *Service) Update(ctx context.Context, id int64, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	employee, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid request for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	employee.ID = id
	if req.IsActive == nil {
		employee.IsActive = existing.IsActive
	}

	if err := validateEmployee(employee); err != nil {
		s.logger.Warn("Update: validation failed for employee id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.employeeRepo.Update(ctx, employee)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmailExists) {
			s.logger.Warn("Update: email %s already exists", employee.Email)
			return nil, ErrEmailExists
		}
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: employee id=%d updated", id)
	return models.FromDomainEmployee(updated), nil
}

// Deactivate деактивирует сотрудника, история отметок сохраняется
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		return s.mapRepoError("Deactivate", id, err)
	}

	s.logger.Info("Deactivate: employee id=%d deactivated", id)
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
		s.logger.Warn("%s: employee id=%d not found", op, id)
		return ErrEmployeeNotFound
	}
	s.logger.Error("%s: repository error for employee id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
