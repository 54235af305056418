package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, reference string, req *models.CancelReservationRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
