package calculate_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-CoworkingService/internal/usecase/calculate_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время (HH:MM)"
	msgInvalidInput       = "некорректные параметры расчета"
	msgSpaceNotFound      = "пространство не найдено"
	msgDateInPast         = "дата аренды в прошлом"
	msgSpaceClosed        = "пространство закрыто в выбранную дату"
	msgOutsideHours       = "интервал выходит за часы работы пространства"
	msgDurationTooShort   = "длительность меньше минимальной"
	msgTooManyPeople      = "количество человек превышает вместимость пространства"
	msgRateNotAvailable   = "тариф недоступен для этого пространства"
	msgPromoNotFound      = "промокод не найден"
	msgPromoInvalid       = "промокод не может быть применен"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /calculate-price - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrSpaceNotFound):
			h.logger.Warn("POST /calculate-price - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /calculate-price - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, calculatePrice.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, calculatePrice.ErrSpaceClosed):
			handlers.RespondBadRequest(w, msgSpaceClosed)

		case errors.Is(err, calculatePrice.ErrOutsideOpeningHours):
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, calculatePrice.ErrDurationTooShort):
			handlers.RespondBadRequest(w, msgDurationTooShort)

		case errors.Is(err, calculatePrice.ErrTooManyPeople):
			handlers.RespondBadRequest(w, msgTooManyPeople)

		case errors.Is(err, calculatePrice.ErrRateNotAvailable):
			handlers.RespondBadRequest(w, msgRateNotAvailable)

		case errors.Is(err, calculatePrice.ErrPromoCodeNotFound):
			handlers.RespondNotFound(w, msgPromoNotFound)

		case errors.Is(err, calculatePrice.ErrPromoCodeInvalid):
			handlers.RespondBadRequest(w, msgPromoInvalid)

		default:
			h.logger.Error("POST /calculate-price - Failed to calculate price: space_id=%d, error=%v", req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /calculate-price - Price calculated: space_id=%d, applied=%s, total=%d, source=%s",
		req.SpaceID, response.AppliedType, response.DisplayedCents, response.Source)
	handlers.RespondJSON(w, http.StatusOK, response)
}
