package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByReference(ctx context.Context, reference string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
