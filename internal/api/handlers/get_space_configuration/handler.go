package get_space_configuration

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces"
)

const (
	msgInvalidSpaceID = "некорректный ID пространства"
	msgNotFound       = "пространство не найдено"
)

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/space-configurations/{spaceId}
// Деактивированные пространства для клиентов не существуют
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("GET /space-configurations/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	result, err := h.service.Get(r.Context(), spaceID, true)
	if err != nil {
		if errors.Is(err, spaces.ErrSpaceNotFound) {
			h.logger.Warn("GET /space-configurations/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /space-configurations/{id} - Failed to get space: space_id=%d, error=%v", spaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /space-configurations/{id} - Space retrieved: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
