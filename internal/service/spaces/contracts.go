package spaces

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.SpaceConfiguration) (*domain.SpaceConfiguration, error)
	GetByID(ctx context.Context, id int64) (*domain.SpaceConfiguration, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.SpaceConfiguration, error)
	Update(ctx context.Context, space *domain.SpaceConfiguration) (*domain.SpaceConfiguration, error)
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
