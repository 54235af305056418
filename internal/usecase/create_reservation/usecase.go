package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	promoRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/promocode"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/calculate_price"
)

// UseCase use case для создания бронирования
type UseCase struct {
	calculator      PriceCalculator
	reservationRepo ReservationRepository
	promoRepo       PromoCodeRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calculator PriceCalculator,
	reservationRepo ReservationRepository,
	promoRepo PromoCodeRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		calculator:      calculator,
		reservationRepo: reservationRepo,
		promoRepo:       promoRepo,
		txManager:       txManager,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: space=%d, type=%s, date=%s, start=%s, end=%s, people=%d",
		req.SpaceID, req.Type, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.People)

	// 1. Валидация данных клиента
	if err := validateCustomer(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Расчет стоимости (валидация периода, часов работы и промокода)
	priced, err := uc.calculator.Execute(ctx, &calculate_price.Request{
		SpaceID:    req.SpaceID,
		Type:       req.Type,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		People:     req.People,
		PromoCode:  req.PromoCode,
		IncludeVAT: true,
	})
	if err != nil {
		uc.logger.Warn("CreateReservation: price calculation failed: %v", err)
		return nil, translatePriceError(err)
	}

	quote := priced.Quote
	space := priced.Space
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	// 3. Проверяем сетку слотов и минимальное время до начала
	if err := validateSlotAlignment(req, space, day); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}
	if err := validateNotice(quote.Period.Start, uc.timeProvider.Now(), space.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем пересекающиеся активные бронирования
		reservations, err := uc.reservationRepo.ListOverlapping(txCtx, space.ID, quote.Period.Start, quote.Period.End)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.2. Проверяем вместимость
		remaining := space.RemainingCapacity(reservations, quote.Period.Start, quote.Period.End)
		if remaining < quote.People {
			uc.logger.Warn("CreateReservation: slot not available for space=%d, remaining=%d, requested=%d",
				space.ID, remaining, quote.People)
			return ErrSlotNotAvailable
		}

		// 4.3. Учитываем использование промокода
		if quote.PromoCode != nil {
			if err := uc.promoRepo.IncrementUsage(txCtx, *quote.PromoCode); err != nil {
				if errors.Is(err, promoRepo.ErrPromoCodeExhausted) || errors.Is(err, promoRepo.ErrPromoCodeNotFound) {
					uc.logger.Warn("CreateReservation: promo code %s cannot be used: %v", *quote.PromoCode, err)
					return fmt.Errorf("%w: %s", ErrPromoCodeInvalid, *quote.PromoCode)
				}
				uc.logger.Error("CreateReservation: failed to increment promo code usage: %v", err)
				return fmt.Errorf("%w: failed to increment promo code usage: %v", ErrInternal, err)
			}
		}

		// 4.4. Создаем бронирование. При залоге бронирование ожидает авторизации карты
		reservation := &domain.Reservation{
			Reference:      uuid.NewString(),
			SpaceID:        space.ID,
			Type:           quote.AppliedType,
			StartAt:        quote.Period.Start,
			EndAt:          quote.Period.End,
			People:         quote.People,
			Customer:       req.Customer,
			Amounts:        quote.Amounts,
			VATRatePercent: quote.VATRatePercent,
			PromoCode:      quote.PromoCode,
			Status:         domain.ReservationStatusConfirmed,
			DepositStatus:  domain.DepositNotRequired,
			Notes:          req.Notes,
		}
		if space.RequiresDeposit() {
			reservation.Status = domain.ReservationStatusPending
			reservation.DepositStatus = domain.DepositPending
			reservation.DepositCents = space.DepositCents
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncReservationCreated(string(result.Type))
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d reference=%s status=%s",
		result.ID, result.Reference, result.Status)

	return &Response{
		Reservation: result,
		SpaceName:   priced.SpaceName,
		Currency:    priced.Currency,
		Quote:       quote,
	}, nil
}

// translatePriceError переводит ошибки расчета стоимости в ошибки бронирования
func translatePriceError(err error) error {
	switch {
	case errors.Is(err, calculate_price.ErrSpaceNotFound):
		return ErrSpaceNotFound
	case errors.Is(err, calculate_price.ErrInvalidDate):
		return ErrInvalidDate
	case errors.Is(err, calculate_price.ErrInvalidInput),
		errors.Is(err, calculate_price.ErrRateNotAvailable):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, calculate_price.ErrSpaceClosed),
		errors.Is(err, calculate_price.ErrOutsideOpeningHours),
		errors.Is(err, calculate_price.ErrDurationTooShort):
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	case errors.Is(err, calculate_price.ErrTooManyPeople):
		return ErrTooManyPeople
	case errors.Is(err, calculate_price.ErrPromoCodeNotFound),
		errors.Is(err, calculate_price.ErrPromoCodeInvalid):
		return fmt.Errorf("%w: %v", ErrPromoCodeInvalid, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
