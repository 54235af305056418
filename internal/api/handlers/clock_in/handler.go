package clock_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	clockIn "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_in"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный ID сотрудника"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgEmployeeInactive   = "сотрудник деактивирован"
	msgAlreadyClockedIn   = "сотрудник уже отметил приход"
)

type Handler struct {
	useCase ClockInUseCase
	logger  Logger
}

func NewHandler(useCase ClockInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/time-entries/clock-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ClockInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-entries/clock-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, clockIn.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, clockIn.ErrEmployeeNotFound):
			h.logger.Warn("POST /time-entries/clock-in - Employee not found: employee_id=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, clockIn.ErrEmployeeInactive):
			handlers.RespondBadRequest(w, msgEmployeeInactive)

		case errors.Is(err, clockIn.ErrAlreadyClockedIn):
			h.logger.Warn("POST /time-entries/clock-in - Already clocked in: employee_id=%d", req.EmployeeID)
			handlers.RespondConflict(w, msgAlreadyClockedIn)

		default:
			h.logger.Error("POST /time-entries/clock-in - Failed to clock in: employee_id=%d, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-entries/clock-in - Clocked in: employee_id=%d, entry_id=%d", req.EmployeeID, result.Entry.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
