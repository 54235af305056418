package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	SpaceID   int64
	Type      domain.ReservationType
	Date      time.Time
	StartTime types.TimeString // только для почасовой аренды
	EndTime   types.TimeString // только для почасовой аренды
	People    int
	PromoCode *string
	Customer  domain.Customer
	Notes     *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	SpaceName   string
	Currency    string
	Quote       domain.PriceQuote
}
