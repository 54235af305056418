package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

type mockSpaceRepo struct{ mock.Mock }

func (m *mockSpaceRepo) GetByID(ctx context.Context, id int64) (*domain.SpaceConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpaceConfiguration), args.Error(1)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) ListOverlapping(ctx context.Context, spaceID int64, from, to time.Time) ([]*domain.Reservation, error) {
	args := m.Called(ctx, spaceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var paris, _ = time.LoadLocation("Europe/Paris")

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, paris)
}

func weekday(open, close types.TimeString) domain.DaySchedule {
	return domain.DaySchedule{IsOpen: true, OpenTime: open, CloseTime: close}
}

func meetingRoom() *domain.SpaceConfiguration {
	day := weekday("09:00", "18:00")
	return &domain.SpaceConfiguration{
		ID:                 7,
		Name:               "Salle Eiffel",
		Kind:               domain.SpaceKindPrivate,
		Capacity:           8,
		SlotStepMinutes:    60,
		MinDurationMinutes: 60,
		OpeningHours: domain.OpeningHours{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day,
		},
		IsActive: true,
	}
}

func openSpace() *domain.SpaceConfiguration {
	space := meetingRoom()
	space.ID = 8
	space.Kind = domain.SpaceKindOpenSpace
	space.Capacity = 4
	return space
}

func newTestUseCase(spaces *mockSpaceRepo, reservations *mockReservationRepo, now time.Time) *UseCase {
	uc := NewUseCase(spaces, reservations, paris, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func startTimes(slots []Slot) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.StartTime)
	}
	return result
}

func TestExecute_HourlyStartSlots(t *testing.T) {
	spaces := &mockSpaceRepo{}
	spaces.On("GetByID", mock.Anything, int64(7)).Return(meetingRoom(), nil)

	reservations := &mockReservationRepo{}
	reservations.On("ListOverlapping", mock.Anything, int64(7), at(20, 9, 0), at(20, 18, 0)).Return([]*domain.Reservation{
		{SpaceID: 7, StartAt: at(20, 10, 0), EndAt: at(20, 12, 0), People: 4, Status: domain.ReservationStatusConfirmed},
	}, nil)

	uc := newTestUseCase(spaces, reservations, at(19, 12, 0))
	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 7, Date: at(20, 0, 0)})
	require.NoError(t, err)

	assert.True(t, resp.Open)
	assert.Equal(t, domain.ReservationTypeHourly, resp.Type)
	// 09:00 .. 17:00, начало + 60 минут не позже закрытия
	require.Len(t, resp.StartSlots, 9)
	assert.Equal(t, types.TimeString("09:00"), resp.StartSlots[0].StartTime)
	assert.Equal(t, types.TimeString("17:00"), resp.StartSlots[8].StartTime)

	// Занятые слоты остаются в списке с Available = false
	assert.True(t, resp.StartSlots[0].Available)
	assert.False(t, resp.StartSlots[1].Available)
	assert.False(t, resp.StartSlots[2].Available)
	assert.True(t, resp.StartSlots[3].Available)
	assert.Equal(t, 8, resp.StartSlots[3].AvailableCapacity)
	assert.Empty(t, resp.EndSlots)
}

func TestExecute_TodayRespectsNotice(t *testing.T) {
	space := meetingRoom()
	space.MinBookingNoticeMinutes = 30

	spaces := &mockSpaceRepo{}
	spaces.On("GetByID", mock.Anything, int64(7)).Return(space, nil)
	reservations := &mockReservationRepo{}
	reservations.On("ListOverlapping", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)

	uc := newTestUseCase(spaces, reservations, at(20, 13, 40))
	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 7, Date: at(20, 0, 0)})
	require.NoError(t, err)

	// 13:40 + 30 минут = 14:10, первый слот 15:00
	assert.Equal(t, []types.TimeString{"15:00", "16:00", "17:00"}, startTimes(resp.StartSlots))
}

func TestExecute_EndSlotsStopAtFirstConflict(t *testing.T) {
	spaces := &mockSpaceRepo{}
	spaces.On("GetByID", mock.Anything, int64(8)).Return(openSpace(), nil)

	reservations := &mockReservationRepo{}
	reservations.On("ListOverlapping", mock.Anything, int64(8), mock.Anything, mock.Anything).Return([]*domain.Reservation{
		{SpaceID: 8, StartAt: at(20, 15, 0), EndAt: at(20, 16, 0), People: 3, Status: domain.ReservationStatusConfirmed},
		{SpaceID: 8, StartAt: at(20, 17, 0), EndAt: at(20, 18, 0), People: 1, Status: domain.ReservationStatusPending},
	}, nil)

	uc := newTestUseCase(spaces, reservations, at(19, 12, 0))
	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:   8,
		Date:      at(20, 0, 0),
		StartTime: ptr.Ptr(types.TimeString("09:00")),
		People:    2,
	})
	require.NoError(t, err)

	// 10:00 .. 15:00, слот 16:00 пересекается с бронированием на 3 человек
	require.Len(t, resp.EndSlots, 6)
	assert.Equal(t, types.TimeString("10:00"), resp.EndSlots[0].EndTime)
	assert.Equal(t, types.TimeString("15:00"), resp.EndSlots[5].EndTime)
	assert.False(t, resp.EndSlots[3].DailyRateApplied)
	assert.True(t, resp.EndSlots[4].DailyRateApplied)
	assert.Equal(t, 300, resp.EndSlots[4].DurationMinutes)
}

func TestExecute_InvalidStartTime(t *testing.T) {
	spaces := &mockSpaceRepo{}
	spaces.On("GetByID", mock.Anything, int64(7)).Return(meetingRoom(), nil)
	reservations := &mockReservationRepo{}
	reservations.On("ListOverlapping", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)

	uc := newTestUseCase(spaces, reservations, at(19, 12, 0))
	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:   7,
		Date:      at(20, 0, 0),
		StartTime: ptr.Ptr(types.TimeString("09:30")),
	})
	assert.ErrorIs(t, err, ErrInvalidStartTime)
}

func TestExecute_ClosedDay(t *testing.T) {
	spaces := &mockSpaceRepo{}
	spaces.On("GetByID", mock.Anything, int64(7)).Return(meetingRoom(), nil)
	reservations := &mockReservationRepo{}

	uc := newTestUseCase(spaces, reservations, at(19, 12, 0))
	// 24 октября 2026 - суббота
	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 7, Date: at(24, 0, 0)})
	require.NoError(t, err)

	assert.False(t, resp.Open)
	assert.Empty(t, resp.StartSlots)
	reservations.AssertNotCalled(t, "ListOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_PeriodAvailability(t *testing.T) {
	spaces := &mockSpaceRepo{}
	spaces.On("GetByID", mock.Anything, int64(8)).Return(openSpace(), nil)

	reservations := &mockReservationRepo{}
	reservations.On("ListOverlapping", mock.Anything, int64(8), at(20, 0, 0), at(27, 0, 0)).Return([]*domain.Reservation{
		{SpaceID: 8, StartAt: at(22, 9, 0), EndAt: at(22, 18, 0), People: 3, Status: domain.ReservationStatusConfirmed},
	}, nil)
	reservations.On("ListOverlapping", mock.Anything, int64(8), at(20, 9, 0), at(20, 18, 0)).Return([]*domain.Reservation{}, nil)

	uc := newTestUseCase(spaces, reservations, at(19, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 8, Date: at(20, 0, 0), Type: domain.ReservationTypeWeekly, People: 2})
	require.NoError(t, err)
	require.NotNil(t, resp.Period)
	assert.Equal(t, 1, resp.Period.AvailableCapacity)
	assert.False(t, resp.Period.Available)

	resp, err = uc.Execute(context.Background(), &Request{SpaceID: 8, Date: at(20, 0, 0), Type: domain.ReservationTypeDaily})
	require.NoError(t, err)
	require.NotNil(t, resp.Period)
	assert.Equal(t, 4, resp.Period.AvailableCapacity)
	assert.True(t, resp.Period.Available)
}

func TestExecute_MonthlyPeriodFromLastDayOfMonth(t *testing.T) {
	spaces := &mockSpaceRepo{}
	spaces.On("GetByID", mock.Anything, int64(8)).Return(openSpace(), nil)

	start := time.Date(2027, 1, 31, 0, 0, 0, 0, paris)
	end := time.Date(2027, 2, 28, 0, 0, 0, 0, paris)

	reservations := &mockReservationRepo{}
	reservations.On("ListOverlapping", mock.Anything, int64(8), start, end).Return([]*domain.Reservation{}, nil)

	uc := newTestUseCase(spaces, reservations, at(19, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 8, Date: start, Type: domain.ReservationTypeMonthly, People: 1})
	require.NoError(t, err)
	require.NotNil(t, resp.Period)
	assert.Equal(t, start, resp.Period.Start)
	assert.Equal(t, end, resp.Period.End)
	assert.Equal(t, 4, resp.Period.AvailableCapacity)
	reservations.AssertExpectations(t)
}

func TestExecute_Errors(t *testing.T) {
	spaces := &mockSpaceRepo{}
	spaces.On("GetByID", mock.Anything, int64(1)).Return(nil, spaceRepo.ErrSpaceNotFound)
	spaces.On("GetByID", mock.Anything, int64(2)).Return(nil, errors.New("db down"))

	uc := newTestUseCase(spaces, &mockReservationRepo{}, at(19, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Date: at(20, 0, 0)})
	assert.ErrorIs(t, err, ErrSpaceNotFound)

	_, err = uc.Execute(context.Background(), &Request{SpaceID: 2, Date: at(20, 0, 0)})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.Execute(context.Background(), &Request{SpaceID: 1, Date: at(18, 0, 0)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{SpaceID: 0, Date: at(20, 0, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
