package jobs

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// ReservationService освобождение банковских отпечатков завершенных бронирований
type ReservationService interface {
	ReleaseExpiredHolds(ctx context.Context, before time.Time) (int, error)
}

// PromoCodeService деактивация просроченных промокодов
type PromoCodeService interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// TimeEntryService поиск забытых отметок ухода
type TimeEntryService interface {
	ListForgotten(ctx context.Context, maxAge time.Duration) ([]*domain.TimeEntry, error)
}

// MetricsRecorder интерфейс для записи метрик запусков
type MetricsRecorder interface {
	IncJobRun(job, result string)
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
