package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-CoworkingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSpaceID   = "некорректный ID пространства"
	msgMissingDate      = "дата обязательна"
	msgInvalidParams    = "некорректные параметры: date YYYY-MM-DD, start HH:MM, people число"
	msgSpaceNotFound    = "пространство не найдено"
	msgDateInPast       = "дата в прошлом"
	msgInvalidStartTime = "время начала не совпадает со слотом"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/space-configurations/{spaceId}/available-slots
// Query params: date (required, YYYY-MM-DD), type, start (HH:MM), people
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("GET /space-configurations/{id}/available-slots - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /space-configurations/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(spaceID, dateStr, query.Get("type"), query.Get("start"), query.Get("people"))
	if err != nil {
		h.logger.Warn("GET /space-configurations/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSpaceNotFound):
			h.logger.Warn("GET /space-configurations/{id}/available-slots - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidStartTime):
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /space-configurations/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /space-configurations/{id}/available-slots - Failed to get slots: space_id=%d, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /space-configurations/{id}/available-slots - Slots retrieved: space_id=%d, date=%s, start_slots=%d, end_slots=%d",
		spaceID, response.Date, len(response.StartSlots), len(response.EndSlots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
