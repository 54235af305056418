package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/calculate_price"
)

// PriceCalculator интерфейс расчета стоимости (use case calculate_price)
type PriceCalculator interface {
	Execute(ctx context.Context, req *calculate_price.Request) (*calculate_price.Response, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	ListOverlapping(ctx context.Context, spaceID int64, from, to time.Time) ([]*domain.Reservation, error)
}

// PromoCodeRepository интерфейс репозитория промокодов
type PromoCodeRepository interface {
	IncrementUsage(ctx context.Context, code string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для бизнес-метрик
type MetricsRecorder interface {
	IncReservationCreated(reservationType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
