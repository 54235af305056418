package timeentries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/employee"
	timeEntryRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/timeentry"
	"github.com/m04kA/SMC-CoworkingService/internal/service/timeentries/models"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type mockTimeEntryRepo struct{ mock.Mock }

func (m *mockTimeEntryRepo) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) List(ctx context.Context, filter domain.TimeEntriesFilter) ([]*domain.TimeEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) ListRunningBefore(ctx context.Context, before time.Time) ([]*domain.TimeEntry, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) Update(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *mockTimeEntryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockEmployeeRepo struct{ mock.Mock }

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)

func newTestService(entries *mockTimeEntryRepo, employees *mockEmployeeRepo) *Service {
	svc := NewService(entries, employees, passthroughTx{}, nopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return svc
}

func TestCreate_ManualEntry(t *testing.T) {
	employees := &mockEmployeeRepo{}
	employees.On("GetByID", mock.Anything, int64(4)).Return(&domain.Employee{ID: 4, IsActive: true}, nil)

	clockIn := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)

	entries := &mockTimeEntryRepo{}
	entries.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.TimeEntry) bool {
		return e.Source == domain.TimeEntrySourceAdmin && *e.Note == "badge oublié"
	})).Return(&domain.TimeEntry{ID: 7, EmployeeID: 4, ClockIn: clockIn, ClockOut: &clockOut, Source: domain.TimeEntrySourceAdmin}, nil)

	resp, err := newTestService(entries, employees).Create(context.Background(), &models.TimeEntryRequest{
		EmployeeID: 4,
		ClockIn:    clockIn,
		ClockOut:   &clockOut,
		Note:       ptr.Ptr("  badge oublié "),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, 210, resp.DurationMinutes)
	assert.False(t, resp.Running)
	assert.Equal(t, "admin", resp.Source)
}

func TestCreate_Validation(t *testing.T) {
	clockIn := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *models.TimeEntryRequest
	}{
		{name: "no employee", req: &models.TimeEntryRequest{ClockIn: clockIn}},
		{name: "no clock in", req: &models.TimeEntryRequest{EmployeeID: 4}},
		{name: "clock out before clock in", req: &models.TimeEntryRequest{EmployeeID: 4, ClockIn: clockIn, ClockOut: ptr.Ptr(clockIn.Add(-time.Minute))}},
		{name: "clock out equals clock in", req: &models.TimeEntryRequest{EmployeeID: 4, ClockIn: clockIn, ClockOut: ptr.Ptr(clockIn)}},
		{name: "future clock in", req: &models.TimeEntryRequest{EmployeeID: 4, ClockIn: now.Add(time.Hour)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(&mockTimeEntryRepo{}, &mockEmployeeRepo{}).Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_SecondRunningEntry(t *testing.T) {
	employees := &mockEmployeeRepo{}
	employees.On("GetByID", mock.Anything, int64(4)).Return(&domain.Employee{ID: 4}, nil)

	entries := &mockTimeEntryRepo{}
	entries.On("Create", mock.Anything, mock.Anything).Return(nil, timeEntryRepo.ErrAlreadyRunning)

	_, err := newTestService(entries, employees).Create(context.Background(), &models.TimeEntryRequest{
		EmployeeID: 4,
		ClockIn:    now.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestCreate_UnknownEmployee(t *testing.T) {
	employees := &mockEmployeeRepo{}
	employees.On("GetByID", mock.Anything, int64(99)).Return(nil, employeeRepo.ErrEmployeeNotFound)

	_, err := newTestService(&mockTimeEntryRepo{}, employees).Create(context.Background(), &models.TimeEntryRequest{
		EmployeeID: 99,
		ClockIn:    now.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdate_KeepsSource(t *testing.T) {
	clockIn := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	clockOut := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	entries := &mockTimeEntryRepo{}
	entries.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.TimeEntry{ID: 7, EmployeeID: 4, ClockIn: clockIn, Source: domain.TimeEntrySourceKiosk}, nil)
	entries.On("Update", mock.Anything, mock.MatchedBy(func(e *domain.TimeEntry) bool {
		return e.Source == domain.TimeEntrySourceKiosk && e.ClockOut != nil && e.ClockOut.Equal(clockOut)
	})).Return(&domain.TimeEntry{ID: 7, EmployeeID: 4, ClockIn: clockIn, ClockOut: &clockOut, Source: domain.TimeEntrySourceKiosk}, nil)

	resp, err := newTestService(entries, &mockEmployeeRepo{}).Update(context.Background(), 7, &models.TimeEntryRequest{
		EmployeeID: 4,
		ClockIn:    clockIn,
		ClockOut:   &clockOut,
	})
	require.NoError(t, err)
	assert.Equal(t, "kiosk", resp.Source)
	entries.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	entries := &mockTimeEntryRepo{}
	entries.On("GetByID", mock.Anything, int64(7)).Return(nil, timeEntryRepo.ErrTimeEntryNotFound)

	_, err := newTestService(entries, &mockEmployeeRepo{}).Update(context.Background(), 7, &models.TimeEntryRequest{
		EmployeeID: 4,
		ClockIn:    now.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrTimeEntryNotFound)
}

func TestDelete(t *testing.T) {
	entries := &mockTimeEntryRepo{}
	entries.On("Delete", mock.Anything, int64(7)).Return(nil)
	entries.On("Delete", mock.Anything, int64(8)).Return(timeEntryRepo.ErrTimeEntryNotFound)
	entries.On("Delete", mock.Anything, int64(9)).Return(errors.New("db down"))

	svc := newTestService(entries, &mockEmployeeRepo{})

	assert.NoError(t, svc.Delete(context.Background(), 7))
	assert.ErrorIs(t, svc.Delete(context.Background(), 8), ErrTimeEntryNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrInternal)
}

func TestList_InvalidRange(t *testing.T) {
	from := now
	to := now.Add(-time.Hour)

	_, err := newTestService(&mockTimeEntryRepo{}, &mockEmployeeRepo{}).List(context.Background(), &models.ListTimeEntriesRequest{
		From: &from,
		To:   &to,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListForgotten(t *testing.T) {
	entries := &mockTimeEntryRepo{}
	entries.On("ListRunningBefore", mock.Anything, now.Add(-12*time.Hour)).
		Return([]*domain.TimeEntry{{ID: 3, EmployeeID: 4, ClockIn: now.Add(-13 * time.Hour)}}, nil)

	result, err := newTestService(entries, &mockEmployeeRepo{}).ListForgotten(context.Background(), 12*time.Hour)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(3), result[0].ID)
}
