package cancel_reservation

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations"
	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations/models"
)

const (
	msgInvalidReference   = "некорректная ссылка на бронирование"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "слишком длинная причина отмены"
	msgNotFound           = "бронирование не найдено"
	msgCannotCancel       = "бронирование не может быть отменено"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/reservations/{reference}/cancel
// Тело запроса необязательно: {"reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if _, err := uuid.Parse(reference); err != nil {
		h.logger.Warn("PATCH /reservations/{ref}/cancel - Invalid reference: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	var req models.CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /reservations/{ref}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.Cancel(r.Context(), reference, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{ref}/cancel - Reservation not found: ref=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/{ref}/cancel - Cannot cancel: ref=%s", reference)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{ref}/cancel - Failed to cancel reservation: ref=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{ref}/cancel - Reservation cancelled: ref=%s, deposit=%s",
		reference, reservation.DepositStatus)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
