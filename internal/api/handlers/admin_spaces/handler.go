package admin_spaces

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

const (
	msgInvalidSpaceID     = "некорректный ID пространства"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "некорректный параметр active"
	msgInvalidInput       = "некорректные данные пространства"
	msgInvalidHours       = "некорректные часы работы"
	msgInvalidTiers       = "некорректные ценовые уровни"
	msgNotFound           = "пространство не найдено"
	msgSlugExists         = "пространство с таким slug уже существует"
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

// HandleList GET /api/admin/space-configurations
// Query params: active (true - только активные)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive, err := handlers.QueryBool(r, "active")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.respondError(w, "GET /admin/space-configurations", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/admin/space-configurations/{spaceId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("GET /admin/space-configurations/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	result, err := h.service.Get(r.Context(), id, false)
	if err != nil {
		h.respondError(w, "GET /admin/space-configurations/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/admin/space-configurations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.SpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/space-configurations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/space-configurations", err)
		return
	}

	h.logger.Info("POST /admin/space-configurations - Space created: space_id=%d, slug=%s", result.ID, result.Slug)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/admin/space-configurations/{spaceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("PUT /admin/space-configurations/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req models.SpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/space-configurations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/space-configurations/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/space-configurations/{id} - Space updated: space_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/admin/space-configurations/{spaceId}
// Пространство деактивируется, бронирования сохраняются
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "spaceId")
	if err != nil {
		h.logger.Warn("DELETE /admin/space-configurations/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/space-configurations/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/space-configurations/{id} - Space deactivated: space_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, spaces.ErrSpaceNotFound):
		h.logger.Warn("%s - Space not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, spaces.ErrSlugExists):
		h.logger.Warn("%s - Slug already exists", op)
		handlers.RespondConflict(w, msgSlugExists)

	case errors.Is(err, spaces.ErrInvalidOpeningHours):
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidHours+": "+err.Error())

	case errors.Is(err, spaces.ErrInvalidPriceTiers):
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidTiers+": "+err.Error())

	case errors.Is(err, spaces.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
