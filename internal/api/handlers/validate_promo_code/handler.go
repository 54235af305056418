package validate_promo_code

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes"
	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "код обязателен, сумма не может быть отрицательной"
	msgNotFound           = "промокод не найден"
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

// Handle POST /api/promo-codes/validate
// Неприменимый код возвращается с valid=false и причиной, а не ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ValidatePromoCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo-codes/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Validate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, promocodes.ErrInvalidInput):
			h.logger.Warn("POST /promo-codes/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, promocodes.ErrPromoCodeNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /promo-codes/validate - Failed to validate code: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promo-codes/validate - Code checked: code=%s, valid=%t", result.Code, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, result)
}
