package get_space_configurations

import (
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
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

// Handle GET /api/space-configurations
// Публичный endpoint - только активные пространства
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /space-configurations - Failed to list spaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /space-configurations - Spaces retrieved: count=%d", len(result.Spaces))
	handlers.RespondJSON(w, http.StatusOK, result)
}
