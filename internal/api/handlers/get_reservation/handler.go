package get_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations"
)

const (
	msgInvalidReference = "некорректная ссылка на бронирование"
	msgNotFound         = "бронирование не найдено"
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

// Handle GET /api/reservations/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if _, err := uuid.Parse(reference); err != nil {
		h.logger.Warn("GET /reservations/{ref} - Invalid reference: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	reservation, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /reservations/{ref} - Reservation not found: ref=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /reservations/{ref} - Failed to get reservation: ref=%s, error=%v", reference, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/{ref} - Reservation retrieved: ref=%s, status=%s", reference, reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
