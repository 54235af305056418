package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// Request модель запроса на расчет цены
type Request struct {
	SpaceID    int64                  // ID пространства
	Type       domain.ReservationType // Запрошенный тип аренды
	Date       time.Time              // Дата начала (без времени)
	StartTime  types.TimeString       // Время начала (только для почасовой аренды)
	EndTime    types.TimeString       // Время окончания (только для почасовой аренды)
	People     int                    // Количество человек (0 = 1)
	PromoCode  *string                // Промокод (опционально)
	IncludeVAT bool                   // Итог с НДС (TTC) или без (HT)
}

// Response модель ответа с расчетом цены
type Response struct {
	Quote     domain.PriceQuote
	Space     *domain.SpaceConfiguration // Пространство, для которого выполнен расчет
	SpaceName string
	Currency  string
}

// Settings параметры тарификации из конфигурации
type Settings struct {
	VATRatePercent float64
	Currency       string
	Location       *time.Location
}
