package admin_spaces

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

type SpaceService interface {
	List(ctx context.Context, onlyActive bool) (*models.SpaceListResponse, error)
	Get(ctx context.Context, id int64, onlyActive bool) (*models.SpaceResponse, error)
	Create(ctx context.Context, req *models.SpaceRequest) (*models.SpaceResponse, error)
	Update(ctx context.Context, id int64, req *models.SpaceRequest) (*models.SpaceResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
