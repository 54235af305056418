package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	reservationRepo ReservationRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: space=%d, date=%s, type=%s, people=%d",
		req.SpaceID, req.Date.Format(domain.DateFormat), req.Type, req.People)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	reservationType := req.Type
	if reservationType == "" {
		reservationType = domain.ReservationTypeHourly
	}
	people := req.People
	if people == 0 {
		people = domain.DefaultPeopleCount
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	if isDateInPast(day, now, uc.location) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", day.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем пространство
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetAvailableSlots: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}
	if !space.IsActive {
		uc.logger.Warn("GetAvailableSlots: space id=%d is inactive", req.SpaceID)
		return nil, ErrSpaceNotFound
	}

	resp := &Response{
		Date:       day,
		SpaceID:    space.ID,
		Type:       reservationType,
		Capacity:   space.Capacity,
		StartSlots: []Slot{},
		EndSlots:   []EndSlot{},
	}

	if reservationType == domain.ReservationTypeHourly {
		return uc.hourlySlots(ctx, req, space, day, now, people, resp)
	}
	return uc.periodAvailability(ctx, space, day, people, resp)
}

// hourlySlots формирует слоты начала и окончания для почасовой аренды
func (uc *UseCase) hourlySlots(
	ctx context.Context,
	req *Request,
	space *domain.SpaceConfiguration,
	day time.Time,
	now time.Time,
	people int,
	resp *Response,
) (*Response, error) {
	// 4. Получаем рабочие часы на указанную дату
	schedule := space.OpeningHours.ForDay(day)
	if !schedule.IsOpen {
		uc.logger.Info("GetAvailableSlots: space id=%d is closed on %s", space.ID, day.Format(domain.DateFormat))
		return resp, nil
	}
	resp.Open = true

	// 5. Генерируем слоты начала
	starts := generateStartSlots(schedule, space.SlotStep(), space.MinDuration(), day, now, space.MinBookingNoticeMinutes, uc.location)

	// 6. Получаем активные бронирования на этот день
	reservations, err := uc.reservationRepo.ListOverlapping(ctx, space.ID,
		schedule.OpenTime.On(day, uc.location), schedule.CloseTime.On(day, uc.location))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Вычисляем доступность для каждого слота начала
	resp.StartSlots = calculateStartAvailability(space, starts, reservations, day, people, uc.location)

	// 8. Если выбрано время начала - вычисляем слоты окончания
	if req.StartTime != nil {
		if !containsSlot(starts, *req.StartTime) {
			uc.logger.Warn("GetAvailableSlots: start %s is not an offered slot for space id=%d", *req.StartTime, space.ID)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStartTime, *req.StartTime)
		}

		ends := generateEndSlots(*req.StartTime, schedule, space.SlotStep(), space.MinDuration())
		resp.EndSlots = calculateEndAvailability(space, *req.StartTime, ends, reservations, day, people, uc.location)
	}

	uc.logger.Info("GetAvailableSlots: generated %d start slots and %d end slots for space=%d, date=%s",
		len(resp.StartSlots), len(resp.EndSlots), space.ID, day.Format(domain.DateFormat))

	return resp, nil
}

// periodAvailability вычисляет доступность для дневной, недельной и месячной аренды
func (uc *UseCase) periodAvailability(
	ctx context.Context,
	space *domain.SpaceConfiguration,
	day time.Time,
	people int,
	resp *Response,
) (*Response, error) {
	var start, end time.Time

	switch resp.Type {
	case domain.ReservationTypeDaily:
		schedule := space.OpeningHours.ForDay(day)
		if !schedule.IsOpen {
			uc.logger.Info("GetAvailableSlots: space id=%d is closed on %s", space.ID, day.Format(domain.DateFormat))
			return resp, nil
		}
		start = schedule.OpenTime.On(day, uc.location)
		end = schedule.CloseTime.On(day, uc.location)
	default:
		start, end = day, domain.PeriodEnd(resp.Type, day)
	}

	if resp.Type != domain.ReservationTypeDaily && !space.OpeningHours.HasOpenDay() {
		uc.logger.Info("GetAvailableSlots: space id=%d has no open day", space.ID)
		return resp, nil
	}
	resp.Open = true

	reservations, err := uc.reservationRepo.ListOverlapping(ctx, space.ID, start, end)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	remaining := space.RemainingCapacity(reservations, start, end)
	resp.Period = &PeriodAvailability{
		Start:             start,
		End:               end,
		AvailableCapacity: remaining,
		Available:         remaining >= people,
	}

	uc.logger.Info("GetAvailableSlots: space=%d type=%s period %s..%s remaining=%d",
		space.ID, resp.Type, start.Format(time.RFC3339), end.Format(time.RFC3339), remaining)

	return resp, nil
}
