package admin_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations"
	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidQuery         = "некорректные параметры: spaceId число, from и to в формате YYYY-MM-DD"
	msgInvalidInput         = "некорректные параметры бронирования"
	msgNotFound             = "бронирование не найдено"
	msgInvalidStatus        = "недопустимая смена статуса бронирования"
	msgInvalidDeposit       = "недопустимая смена статуса залога"
)

type Handler struct {
	service  ReservationService
	location *time.Location
	logger   Logger
}

func NewHandler(service ReservationService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// HandleList GET /api/admin/reservations
// Query params: spaceId, status, from, to (YYYY-MM-DD, включительно)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req, err := h.listRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /admin/reservations", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateStatus PATCH /api/admin/reservations/{reservationId}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PATCH /admin/reservations/{id}/status", err)
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/status - Status updated: reservation_id=%d, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateDeposit PATCH /api/admin/reservations/{reservationId}/deposit
func (h *Handler) HandleUpdateDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/deposit - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.UpdateDepositRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/deposit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDeposit(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PATCH /admin/reservations/{id}/deposit", err)
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/deposit - Deposit updated: reservation_id=%d, deposit=%s, status=%s",
		id, result.DepositStatus, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) listRequest(r *http.Request) (*models.ListReservationsRequest, error) {
	spaceID, err := handlers.QueryInt64(r, "spaceId")
	if err != nil {
		return nil, err
	}
	from, err := handlers.QueryDate(r, "from", h.location)
	if err != nil {
		return nil, err
	}
	to, err := handlers.QueryDate(r, "to", h.location)
	if err != nil {
		return nil, err
	}
	if to != nil {
		next := to.AddDate(0, 0, 1)
		to = &next
	}

	req := &models.ListReservationsRequest{
		SpaceID: spaceID,
		From:    from,
		To:      to,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, reservations.ErrReservationNotFound):
		h.logger.Warn("%s - Reservation not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, reservations.ErrInvalidStatusTransition):
		h.logger.Warn("%s - %v", op, err)
		handlers.RespondConflict(w, msgInvalidStatus)

	case errors.Is(err, reservations.ErrInvalidDepositTransition):
		h.logger.Warn("%s - %v", op, err)
		handlers.RespondConflict(w, msgInvalidDeposit)

	case errors.Is(err, reservations.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
