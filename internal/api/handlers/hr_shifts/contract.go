package hr_shifts

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/shifts/models"
)

type ShiftService interface {
	List(ctx context.Context, req *models.ListShiftsRequest) (*models.ShiftListResponse, error)
	Create(ctx context.Context, req *models.ShiftRequest) (*models.ShiftResponse, error)
	Update(ctx context.Context, id int64, req *models.ShiftRequest) (*models.ShiftResponse, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, req *models.ListShiftsRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
