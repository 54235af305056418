package get_space_configurations

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

type SpaceService interface {
	List(ctx context.Context, onlyActive bool) (*models.SpaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
