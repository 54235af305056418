package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-CoworkingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время (HH:MM)"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSpaceNotFound      = "пространство не найдено"
	msgDateInPast         = "дата аренды в прошлом"
	msgInvalidTimeSlot    = "выбранный интервал недоступен для бронирования"
	msgTooManyPeople      = "количество человек превышает вместимость пространства"
	msgSlotNotAvailable   = "выбранный интервал уже занят"
	msgPromoInvalid       = "промокод не может быть применен"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSpaceNotFound):
			h.logger.Warn("POST /reservations - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrTooManyPeople):
			handlers.RespondBadRequest(w, msgTooManyPeople)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: space_id=%d, date=%s", req.SpaceID, req.Date)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrPromoCodeInvalid):
			handlers.RespondBadRequest(w, msgPromoInvalid)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: space_id=%d, error=%v", req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created: id=%d, ref=%s, status=%s",
		response.Reservation.ID, response.Reservation.Reference, response.Reservation.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
