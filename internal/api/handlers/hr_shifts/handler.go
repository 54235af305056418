package hr_shifts

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/export"
	"github.com/m04kA/SMC-CoworkingService/internal/service/shifts"
	"github.com/m04kA/SMC-CoworkingService/internal/service/shifts/models"
)

const (
	msgInvalidShiftID     = "некорректный ID смены"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "некорректные параметры: from и to в формате YYYY-MM-DD, employeeId число"
	msgMissingPeriod      = "параметры from и to обязательны"
	msgInvalidInput       = "некорректные данные смены"
	msgNotFound           = "смена не найдена"
	msgOverlap            = "смена пересекается с другой сменой сотрудника"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgEmployeeInactive   = "сотрудник деактивирован"
)

type Handler struct {
	service  ShiftService
	location *time.Location
	logger   Logger
}

func NewHandler(service ShiftService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// HandleList GET /api/hr/shifts
// Query params: employeeId, from, to (YYYY-MM-DD)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req, err := h.listRequest(r)
	if err != nil {
		h.logger.Warn("GET /hr/shifts - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /hr/shifts", err)
		return
	}

	h.logger.Info("GET /hr/shifts - Shifts retrieved: count=%d", len(result.Shifts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleExport GET /api/hr/shifts/export
// Query params: from, to (required), employeeId
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	req, err := h.listRequest(r)
	if err != nil {
		h.logger.Warn("GET /hr/shifts/export - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	if req.From == nil || req.To == nil {
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	data, err := h.service.Export(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /hr/shifts/export", err)
		return
	}

	filename := fmt.Sprintf("planning_%s_%s.xlsx", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	h.logger.Info("GET /hr/shifts/export - Planning exported: file=%s, bytes=%d", filename, len(data))
	handlers.RespondFile(w, export.ContentType, filename, data)
}

// HandleCreate POST /api/hr/shifts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.ShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hr/shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /hr/shifts", err)
		return
	}

	h.logger.Info("POST /hr/shifts - Shift created: shift_id=%d, employee_id=%d", result.ID, req.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/hr/shifts/{shiftId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "shiftId")
	if err != nil {
		h.logger.Warn("PUT /hr/shifts/{id} - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	var req models.ShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hr/shifts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /hr/shifts/{id}", err)
		return
	}

	h.logger.Info("PUT /hr/shifts/{id} - Shift updated: shift_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/hr/shifts/{shiftId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "shiftId")
	if err != nil {
		h.logger.Warn("DELETE /hr/shifts/{id} - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /hr/shifts/{id}", err)
		return
	}

	h.logger.Info("DELETE /hr/shifts/{id} - Shift deleted: shift_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRequest(r *http.Request) (*models.ListShiftsRequest, error) {
	employeeID, err := handlers.QueryInt64(r, "employeeId")
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

	return &models.ListShiftsRequest{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
	}, nil
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, shifts.ErrShiftNotFound):
		h.logger.Warn("%s - Shift not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, shifts.ErrShiftOverlap):
		h.logger.Warn("%s - Shift overlap: %v", op, err)
		handlers.RespondConflict(w, msgOverlap)

	case errors.Is(err, shifts.ErrEmployeeNotFound):
		handlers.RespondNotFound(w, msgEmployeeNotFound)

	case errors.Is(err, shifts.ErrEmployeeInactive):
		handlers.RespondBadRequest(w, msgEmployeeInactive)

	case errors.Is(err, shifts.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
