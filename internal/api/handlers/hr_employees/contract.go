package hr_employees

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/employees/models"
)

type EmployeeService interface {
	List(ctx context.Context, onlyActive bool) (*models.EmployeeListResponse, error)
	Get(ctx context.Context, id int64) (*models.EmployeeResponse, error)
	Create(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
