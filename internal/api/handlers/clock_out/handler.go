package clock_out

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	clockOut "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_out"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные отметки"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgNotClockedIn       = "у сотрудника нет открытой отметки"
)

type Handler struct {
	useCase ClockOutUseCase
	logger  Logger
}

func NewHandler(useCase ClockOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/time-entries/clock-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ClockOutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-entries/clock-out - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, clockOut.ErrInvalidInput):
			h.logger.Warn("POST /time-entries/clock-out - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, clockOut.ErrEmployeeNotFound):
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, clockOut.ErrNotClockedIn):
			h.logger.Warn("POST /time-entries/clock-out - Not clocked in: employee_id=%d", req.EmployeeID)
			handlers.RespondConflict(w, msgNotClockedIn)

		default:
			h.logger.Error("POST /time-entries/clock-out - Failed to clock out: employee_id=%d, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /time-entries/clock-out - Clocked out: employee_id=%d, entry_id=%d, minutes=%d",
		req.EmployeeID, response.Entry.ID, response.Entry.DurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, response)
}
