package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByReference получает бронирование по публичной ссылке
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByReference: fetching reservation ref=%s", reference)

	reservation, err := s.reservationRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, s.mapRepoError("GetByReference", reference, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// Cancel отменяет бронирование клиентом.
// Отменить можно только pending/confirmed бронирование, удержанный залог освобождается
func (s *Service) Cancel(ctx context.Context, reference string, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation ref=%s", reference)

	var reason *string
	if req != nil && req.Reason != nil {
		trimmed := strings.TrimSpace(*req.Reason)
		if len(trimmed) > domain.MaxCancellationReason {
			s.logger.Warn("Cancel: reason too long for ref=%s", reference)
			return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReason)
		}
		if trimmed != "" {
			reason = &trimmed
		}
	}

	var cancelled *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		reservation, err := s.reservationRepo.GetByReference(ctx, reference)
		if err != nil {
			return s.mapRepoError("Cancel", reference, err)
		}

		// 2. Проверяем, можно ли отменить
		if !reservation.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation ref=%s cannot be cancelled, status=%s", reference, reservation.Status)
			return ErrCannotCancel
		}

		// 3. Отменяем и освобождаем залог
		now := s.timeProvider.Now()
		reservation.Status = domain.ReservationStatusCancelled
		reservation.CancelledAt = &now
		reservation.CancelReason = reason
		reservation.DepositStatus = depositAfterCancel(reservation.DepositStatus)

		if err := s.reservationRepo.Update(ctx, reservation); err != nil {
			return s.mapRepoError("Cancel", reference, err)
		}

		cancelled = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: reservation ref=%s cancelled, deposit=%s", reference, cancelled.DepositStatus)
	return models.FromDomainReservation(cancelled), nil
}

// List получает бронирования с фильтрацией (администратор)
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		s.logger.Warn("List: invalid period %s - %s", filter.From, filter.To)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus меняет статус бронирования (администратор).
// Допустимые переходы: pending -> confirmed|cancelled, confirmed -> completed|cancelled
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%d to status=%s", id, req.Status)

	next := domain.ReservationStatus(req.Status)
	if !next.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			return s.mapRepoError("UpdateStatus", fmt.Sprintf("id=%d", id), err)
		}

		if !reservation.Status.CanTransitionTo(next) {
			s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for reservation id=%d",
				reservation.Status, next, id)
			return ErrInvalidStatusTransition
		}

		reservation.Status = next
		if next == domain.ReservationStatusCancelled {
			now := s.timeProvider.Now()
			reservation.CancelledAt = &now
			reservation.DepositStatus = depositAfterCancel(reservation.DepositStatus)
		}

		if err := s.reservationRepo.Update(ctx, reservation); err != nil {
			return s.mapRepoError("UpdateStatus", fmt.Sprintf("id=%d", id), err)
		}

		updated = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: reservation id=%d is now %s", id, updated.Status)
	return models.FromDomainReservation(updated), nil
}

// UpdateDeposit меняет статус залога (администратор).
// pending -> authorized|failed, authorized -> captured|released.
// Авторизация залога подтверждает ожидающее бронирование
func (s *Service) UpdateDeposit(ctx context.Context, id int64, req *models.UpdateDepositRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateDeposit: reservation id=%d to deposit=%s", id, req.Status)

	next := domain.DepositStatus(req.Status)
	if !next.IsValid() {
		s.logger.Warn("UpdateDeposit: invalid deposit status=%s for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid deposit status", ErrInvalidInput)
	}

	var updated *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			return s.mapRepoError("UpdateDeposit", fmt.Sprintf("id=%d", id), err)
		}

		if !reservation.DepositStatus.CanTransitionTo(next) {
			s.logger.Warn("UpdateDeposit: transition %s -> %s not allowed for reservation id=%d",
				reservation.DepositStatus, next, id)
			return ErrInvalidDepositTransition
		}

		reservation.DepositStatus = next
		if req.HoldRef != nil && strings.TrimSpace(*req.HoldRef) != "" {
			holdRef := strings.TrimSpace(*req.HoldRef)
			reservation.DepositHoldRef = &holdRef
		}
		if next == domain.DepositAuthorized && reservation.Status == domain.ReservationStatusPending {
			reservation.Status = domain.ReservationStatusConfirmed
		}

		if err := s.reservationRepo.Update(ctx, reservation); err != nil {
			return s.mapRepoError("UpdateDeposit", fmt.Sprintf("id=%d", id), err)
		}

		updated = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateDeposit: reservation id=%d deposit=%s status=%s", id, updated.DepositStatus, updated.Status)
	return models.FromDomainReservation(updated), nil
}

// ReleaseExpiredHolds освобождает залоги бронирований, закончившихся раньше before,
// и завершает подтвержденные бронирования. Возвращает количество обработанных бронирований
func (s *Service) ReleaseExpiredHolds(ctx context.Context, before time.Time) (int, error) {
	reservations, err := s.reservationRepo.ListEndedWithDeposit(ctx, before, domain.DepositAuthorized)
	if err != nil {
		s.logger.Error("ReleaseExpiredHolds: repository error: %v", err)
		return 0, fmt.Errorf("%w: ReleaseExpiredHolds - repository error: %v", ErrInternal, err)
	}

	released := 0
	for _, reservation := range reservations {
		reservation.DepositStatus = domain.DepositReleased
		if reservation.Status == domain.ReservationStatusConfirmed {
			reservation.Status = domain.ReservationStatusCompleted
		}

		if err := s.reservationRepo.Update(ctx, reservation); err != nil {
			// Продолжаем с остальными, ошибка одного бронирования не блокирует задачу
			s.logger.Error("ReleaseExpiredHolds: failed to release hold of reservation id=%d: %v", reservation.ID, err)
			continue
		}
		released++
	}

	if released > 0 {
		s.logger.Info("ReleaseExpiredHolds: released %d deposit holds", released)
	}
	return released, nil
}

// depositAfterCancel возвращает статус залога после отмены бронирования
func depositAfterCancel(current domain.DepositStatus) domain.DepositStatus {
	switch current {
	case domain.DepositAuthorized:
		return domain.DepositReleased
	case domain.DepositPending:
		return domain.DepositFailed
	default:
		return current
	}
}

func (s *Service) mapRepoError(op, key string, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("%s: reservation %s not found", op, key)
		return ErrReservationNotFound
	}
	s.logger.Error("%s: repository error for reservation %s: %v", op, key, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
