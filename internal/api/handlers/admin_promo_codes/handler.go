package admin_promo_codes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes"
	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes/models"
)

const (
	msgInvalidPromoID     = "некорректный ID промокода"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные промокода"
	msgNotFound           = "промокод не найден"
	msgCodeExists         = "промокод с таким кодом уже существует"
)

type Handler struct {
	service PromoCodeService
	logger  Logger
}

func NewHandler(service PromoCodeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/admin/promo-codes
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /admin/promo-codes", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/admin/promo-codes/{promoId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "promoId")
	if err != nil {
		h.logger.Warn("GET /admin/promo-codes/{id} - Invalid promo ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromoID)
		return
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /admin/promo-codes/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/admin/promo-codes
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.PromoCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promo-codes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/promo-codes", err)
		return
	}

	h.logger.Info("POST /admin/promo-codes - Promo code created: promo_id=%d, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/admin/promo-codes/{promoId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "promoId")
	if err != nil {
		h.logger.Warn("PUT /admin/promo-codes/{id} - Invalid promo ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromoID)
		return
	}

	var req models.PromoCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/promo-codes/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/promo-codes/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/promo-codes/{id} - Promo code updated: promo_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/admin/promo-codes/{promoId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "promoId")
	if err != nil {
		h.logger.Warn("DELETE /admin/promo-codes/{id} - Invalid promo ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromoID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/promo-codes/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/promo-codes/{id} - Promo code deleted: promo_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, promocodes.ErrPromoCodeNotFound):
		h.logger.Warn("%s - Promo code not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, promocodes.ErrCodeExists):
		h.logger.Warn("%s - Code already exists", op)
		handlers.RespondConflict(w, msgCodeExists)

	case errors.Is(err, promocodes.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
