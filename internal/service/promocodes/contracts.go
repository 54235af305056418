package promocodes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// PromoCodeRepository интерфейс репозитория промокодов
type PromoCodeRepository interface {
	Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	GetByID(ctx context.Context, id int64) (*domain.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	List(ctx context.Context) ([]*domain.PromoCode, error)
	Update(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	Delete(ctx context.Context, id int64) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
