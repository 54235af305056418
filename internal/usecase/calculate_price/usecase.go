package calculate_price

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	promoRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/promocode"
	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/pricingengine"
)

// UseCase use case для расчета стоимости аренды
type UseCase struct {
	spaceRepo    SpaceRepository
	promoRepo    PromoCodeRepository
	engine       PricingEngineClient
	metrics      MetricsRecorder
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// engine может быть nil, если внешний движок тарификации отключен
func NewUseCase(
	spaceRepo SpaceRepository,
	promoRepo PromoCodeRepository,
	engine PricingEngineClient,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	return &UseCase{
		spaceRepo:    spaceRepo,
		promoRepo:    promoRepo,
		engine:       engine,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчет стоимости аренды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: space=%d, type=%s, date=%s, start=%s, end=%s, people=%d",
		req.SpaceID, req.Type, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.People)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	people := req.People
	if people == 0 {
		people = domain.DefaultPeopleCount
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.settings.Location); err != nil {
		uc.logger.Warn("CalculatePrice: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем пространство
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CalculatePrice: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}
	if !space.IsActive {
		uc.logger.Warn("CalculatePrice: space id=%d is inactive", req.SpaceID)
		return nil, ErrSpaceNotFound
	}

	// 4. Проверяем вместимость
	if people > space.Capacity {
		uc.logger.Warn("CalculatePrice: %d people exceeds capacity %d of space id=%d", people, space.Capacity, space.ID)
		return nil, fmt.Errorf("%w: capacity is %d", ErrTooManyPeople, space.Capacity)
	}

	// 5. Вычисляем период и длительность с учетом часов работы
	period, duration, err := resolvePeriod(req, space, uc.settings.Location)
	if err != nil {
		uc.logger.Warn("CalculatePrice: failed to resolve period: %v", err)
		return nil, err
	}

	// 6. Правило "5 часов = дневной тариф" и локальная формула
	applied, dailyApplied := applyDailyRule(req.Type, duration)
	rates := space.RatesFor(people)

	subtotal, unit, err := localSubtotal(rates, applied, duration)
	if err != nil {
		uc.logger.Warn("CalculatePrice: %v", err)
		return nil, err
	}

	// 7. Авторитетная цена от внешнего движка (с откатом на локальную формулу)
	source := domain.PriceSourceLocal
	if uc.engine != nil {
		subtotal, source = uc.remoteSubtotal(ctx, space, req, applied, period, duration, people, subtotal)
	}

	// 8. Применяем промокод
	var discount int64
	var promoCode *string
	if req.PromoCode != nil && strings.TrimSpace(*req.PromoCode) != "" {
		code := strings.ToUpper(strings.TrimSpace(*req.PromoCode))

		promo, err := uc.promoRepo.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, promoRepo.ErrPromoCodeNotFound) {
				uc.logger.Warn("CalculatePrice: promo code %s not found", code)
				return nil, ErrPromoCodeNotFound
			}
			uc.logger.Error("CalculatePrice: failed to get promo code %s: %v", code, err)
			return nil, fmt.Errorf("%w: failed to get promo code: %v", ErrInternal, err)
		}

		if err := validatePromoCode(promo, applied, subtotal, now); err != nil {
			uc.logger.Warn("CalculatePrice: %v", err)
			return nil, err
		}

		discount = promo.DiscountFor(subtotal)
		promoCode = &promo.Code
	}

	// 9. НДС и итоговые суммы
	amounts := computeAmounts(subtotal, discount, uc.settings.VATRatePercent)

	if uc.metrics != nil {
		uc.metrics.IncPriceQuote(string(source), string(applied))
	}

	uc.logger.Info("CalculatePrice: space=%d applied=%s dailyRate=%t net=%d total=%d source=%s",
		space.ID, applied, dailyApplied, amounts.NetCents, amounts.TotalCents, source)

	return &Response{
		Quote: domain.PriceQuote{
			SpaceID:          space.ID,
			RequestedType:    req.Type,
			AppliedType:      applied,
			DailyRateApplied: dailyApplied,
			DurationMinutes:  duration,
			People:           people,
			Period:           period,
			UnitPriceCents:   unit,
			Amounts:          amounts,
			VATRatePercent:   uc.settings.VATRatePercent,
			IncludeVAT:       req.IncludeVAT,
			PromoCode:        promoCode,
			Source:           source,
		},
		Space:     space,
		SpaceName: space.Name,
		Currency:  uc.settings.Currency,
	}, nil
}

// remoteSubtotal запрашивает сумму HT у движка тарификации.
// При любой ошибке возвращает локальную сумму с источником fallback
func (uc *UseCase) remoteSubtotal(
	ctx context.Context,
	space *domain.SpaceConfiguration,
	req *Request,
	applied domain.ReservationType,
	period domain.Period,
	duration int,
	people int,
	local int64,
) (int64, domain.PriceSource) {
	quote, err := uc.engine.QuoteWithGracefulDegradation(ctx, &pricingengine.QuoteRequest{
		SpaceID:         space.ID,
		SpaceSlug:       space.Slug,
		Type:            string(applied),
		Start:           period.Start,
		End:             period.End,
		DurationMinutes: duration,
		People:          people,
		LocalAmountHT:   local,
	})
	if err != nil {
		uc.logger.Warn("CalculatePrice: pricing engine unavailable for space=%d type=%s, using local formula: %v",
			space.ID, req.Type, err)
		return local, domain.PriceSourceFallback
	}

	return quote.AmountHT, domain.PriceSourceRemote
}
