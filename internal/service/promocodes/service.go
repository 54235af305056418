package promocodes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	promoRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/promocode"
	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes/models"
)

// Service сервис для работы с промокодами
type Service struct {
	promoRepo    PromoCodeRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(promoRepo PromoCodeRepository, logger Logger) *Service {
	return &Service{
		promoRepo:    promoRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает все промокоды
func (s *Service) List(ctx context.Context) (*models.PromoCodeListResponse, error) {
	promos, err := s.promoRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPromoCodeList(promos), nil
}

// Get получает промокод по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.PromoCodeResponse, error) {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", id, err)
	}

	return models.FromDomainPromoCode(promo), nil
}

// Create создает промокод
func (s *Service) Create(ctx context.Context, req *models.PromoCodeRequest) (*models.PromoCodeResponse, error) {
	promo := req.ToDomain()
	s.logger.Info("Create: creating promo code %s", promo.Code)

	if err := validatePromoCode(promo); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.promoRepo.Create(ctx, promo)
	if err != nil {
		if errors.Is(err, promoRepo.ErrCodeExists) {
			s.logger.Warn("Create: promo code %s already exists", promo.Code)
			return nil, ErrCodeExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: promo code %s created with id=%d", created.Code, created.ID)
	return models.FromDomainPromoCode(created), nil
}

// Update обновляет промокод. Счетчик использований не меняется
func (s *Service) Update(ctx context.Context, id int64, req *models.PromoCodeRequest) (*models.PromoCodeResponse, error) {
	s.logger.Info("Update: updating promo code id=%d", id)

	existing, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	promo := req.ToDomain()
	promo.ID = id
	promo.UsedCount = existing.UsedCount
	if req.IsActive == nil {
		promo.IsActive = existing.IsActive
	}

	if err := validatePromoCode(promo); err != nil {
		s.logger.Warn("Update: validation failed for promo code id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.promoRepo.Update(ctx, promo)
	if err != nil {
		if errors.Is(err, promoRepo.ErrCodeExists) {
			s.logger.Warn("Update: promo code %s already exists", promo.Code)
			return nil, ErrCodeExists
		}
		return nil, s.mapRepoError("Update", id, err)
	}

	return models.FromDomainPromoCode(updated), nil
}

// Delete удаляет промокод
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.promoRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: promo code id=%d deleted", id)
	return nil
}

// Validate проверяет промокод для публичной формы бронирования.
// Неприменимый код не является ошибкой: возвращается Valid=false с причиной
func (s *Service) Validate(ctx context.Context, req *models.ValidatePromoCodeRequest) (*models.ValidatePromoCodeResponse, error) {
	code := models.NormalizeCode(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if req.AmountCents < 0 {
		return nil, fmt.Errorf("%w: amountCents must not be negative", ErrInvalidInput)
	}

	reservationType := domain.ReservationType(req.Type)
	if reservationType != "" && !reservationType.IsValid() {
		return nil, fmt.Errorf("%w: unknown reservation type %q", ErrInvalidInput, req.Type)
	}

	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoCodeNotFound) {
			s.logger.Warn("Validate: promo code %s not found", code)
			return nil, ErrPromoCodeNotFound
		}
		s.logger.Error("Validate: repository error for code %s: %v", code, err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	resp := &models.ValidatePromoCodeResponse{
		Code:       promo.Code,
		PercentOff: promo.PercentOff,
	}

	if reason := rejectReason(promo, reservationType, req.AmountCents, s.timeProvider.Now()); reason != "" {
		resp.Reason = &reason
		return resp, nil
	}

	resp.Valid = true
	resp.DiscountCents = promo.DiscountFor(req.AmountCents)
	return resp, nil
}

// DeactivateExpired деактивирует промокоды с истекшим сроком действия
func (s *Service) DeactivateExpired(ctx context.Context) (int64, error) {
	count, err := s.promoRepo.DeactivateExpired(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("DeactivateExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: DeactivateExpired - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Info("DeactivateExpired: deactivated %d promo codes", count)
	}
	return count, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, promoRepo.ErrPromoCodeNotFound) {
		s.logger.Warn("%s: promo code id=%d not found", op, id)
		return ErrPromoCodeNotFound
	}
	s.logger.Error("%s: repository error for promo code id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
