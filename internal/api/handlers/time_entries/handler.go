package time_entries

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/timeentries"
	"github.com/m04kA/SMC-CoworkingService/internal/service/timeentries/models"
)

const (
	msgInvalidEntryID     = "некорректный ID отметки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "некорректные параметры: from и to в формате YYYY-MM-DD, employeeId число, open true/false"
	msgInvalidInput       = "некорректные данные отметки"
	msgNotFound           = "отметка не найдена"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgAlreadyRunning     = "у сотрудника уже есть открытая отметка"
)

type Handler struct {
	service  TimeEntryService
	location *time.Location
	logger   Logger
}

func NewHandler(service TimeEntryService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// HandleList GET /api/time-entries
// Query params: employeeId, from, to (YYYY-MM-DD, включительно), open
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req, err := h.listRequest(r)
	if err != nil {
		h.logger.Warn("GET /time-entries - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /time-entries", err)
		return
	}

	h.logger.Info("GET /time-entries - Entries retrieved: count=%d", len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/time-entries
// Ручная отметка администратора
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.TimeEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-entries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /time-entries", err)
		return
	}

	h.logger.Info("POST /time-entries - Entry created: entry_id=%d, employee_id=%d", result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/time-entries/{entryId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "entryId")
	if err != nil {
		h.logger.Warn("PUT /time-entries/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	var req models.TimeEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /time-entries/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /time-entries/{id}", err)
		return
	}

	h.logger.Info("PUT /time-entries/{id} - Entry updated: entry_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/time-entries/{entryId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "entryId")
	if err != nil {
		h.logger.Warn("DELETE /time-entries/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /time-entries/{id}", err)
		return
	}

	h.logger.Info("DELETE /time-entries/{id} - Entry deleted: entry_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

// listRequest переводит включительную дату to в полуинтервал [from, to+1 день)
func (h *Handler) listRequest(r *http.Request) (*models.ListTimeEntriesRequest, error) {
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
	onlyOpen, err := handlers.QueryBool(r, "open")
	if err != nil {
		return nil, err
	}

	if to != nil {
		next := to.AddDate(0, 0, 1)
		to = &next
	}

	return &models.ListTimeEntriesRequest{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
		OnlyOpen:   onlyOpen,
	}, nil
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, timeentries.ErrTimeEntryNotFound):
		h.logger.Warn("%s - Entry not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, timeentries.ErrEmployeeNotFound):
		handlers.RespondNotFound(w, msgEmployeeNotFound)

	case errors.Is(err, timeentries.ErrAlreadyRunning):
		h.logger.Warn("%s - Employee already has a running entry", op)
		handlers.RespondConflict(w, msgAlreadyRunning)

	case errors.Is(err, timeentries.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
