package calculate_price

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/pricingengine"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SpaceConfiguration, error)
}

// PromoCodeRepository интерфейс репозитория промокодов
type PromoCodeRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

// PricingEngineClient интерфейс клиента внешнего движка тарификации
type PricingEngineClient interface {
	QuoteWithGracefulDegradation(ctx context.Context, req *pricingengine.QuoteRequest) (*pricingengine.QuoteResponse, error)
}

// MetricsRecorder интерфейс для бизнес-метрик
type MetricsRecorder interface {
	IncPriceQuote(source, reservationType string)
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
