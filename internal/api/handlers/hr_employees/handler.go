package hr_employees

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/employees"
	"github.com/m04kA/SMC-CoworkingService/internal/service/employees/models"
)

const (
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "некорректный параметр active"
	msgInvalidInput       = "некорректные данные сотрудника"
	msgNotFound           = "сотрудник не найден"
	msgEmailExists        = "сотрудник с таким e-mail уже существует"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/hr/employees
// Query params: active (true - только активные)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive, err := handlers.QueryBool(r, "active")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /hr/employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hr/employees - Employees retrieved: count=%d", len(result.Employees))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/hr/employees/{employeeId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "employeeId")
	if err != nil {
		h.logger.Warn("GET /hr/employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /hr/employees/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/hr/employees
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hr/employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /hr/employees", err)
		return
	}

	h.logger.Info("POST /hr/employees - Employee created: employee_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/hr/employees/{employeeId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "employeeId")
	if err != nil {
		h.logger.Warn("PUT /hr/employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var req models.EmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hr/employees/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /hr/employees/{id}", err)
		return
	}

	h.logger.Info("PUT /hr/employees/{id} - Employee updated: employee_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/hr/employees/{employeeId}
// Сотрудник деактивируется, история отметок сохраняется
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "employeeId")
	if err != nil {
		h.logger.Warn("DELETE /hr/employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /hr/employees/{id}", err)
		return
	}

	h.logger.Info("DELETE /hr/employees/{id} - Employee deactivated: employee_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, employees.ErrEmployeeNotFound):
		h.logger.Warn("%s - Employee not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, employees.ErrEmailExists):
		h.logger.Warn("%s - Email already exists", op)
		handlers.RespondConflict(w, msgEmailExists)

	case errors.Is(err, employees.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
