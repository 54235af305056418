package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

type mockReservations struct{ mock.Mock }

func (m *mockReservations) ReleaseExpiredHolds(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

type mockPromoCodes struct{ mock.Mock }

func (m *mockPromoCodes) DeactivateExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockTimeEntries struct{ mock.Mock }

func (m *mockTimeEntries) ListForgotten(ctx context.Context, maxAge time.Duration) ([]*domain.TimeEntry, error) {
	args := m.Called(ctx, maxAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeEntry), args.Error(1)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) IncJobRun(job, result string) {
	m.Called(job, result)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		ReleaseDepositsCron:   "0 3 * * *",
		ExpirePromoCodesCron:  "5 0 * * *",
		ForgottenClockOutCron: "0 23 * * *",
		ReleaseAfterDays:      2,
		MaxShiftHours:         12,
	}
}

func newTestScheduler(r *mockReservations, p *mockPromoCodes, te *mockTimeEntries, m MetricsRecorder, settings Settings) *Scheduler {
	s := NewScheduler(r, p, te, m, settings, nopLogger{})
	s.timeProvider = fixedTime{now: now}
	return s
}

func TestReleaseDeposits_UsesReleaseDelay(t *testing.T) {
	reservations := &mockReservations{}
	reservations.On("ReleaseExpiredHolds", mock.Anything, now.AddDate(0, 0, -2)).Return(3, nil)

	s := newTestScheduler(reservations, &mockPromoCodes{}, &mockTimeEntries{}, nil, testSettings())
	require.NoError(t, s.ReleaseDeposits(context.Background()))
	reservations.AssertExpectations(t)
}

func TestReportForgottenClockOuts_UsesMaxShift(t *testing.T) {
	entries := &mockTimeEntries{}
	entries.On("ListForgotten", mock.Anything, 12*time.Hour).Return([]*domain.TimeEntry{
		{ID: 5, EmployeeID: 2, ClockIn: now.Add(-20 * time.Hour)},
	}, nil)

	s := newTestScheduler(&mockReservations{}, &mockPromoCodes{}, entries, nil, testSettings())
	require.NoError(t, s.ReportForgottenClockOuts(context.Background()))
	entries.AssertExpectations(t)
}

func TestExecute_RecordsResult(t *testing.T) {
	promoCodes := &mockPromoCodes{}
	promoCodes.On("DeactivateExpired", mock.Anything).Return(int64(2), nil).Once()
	promoCodes.On("DeactivateExpired", mock.Anything).Return(int64(0), errors.New("db down")).Once()

	metrics := &mockMetrics{}
	metrics.On("IncJobRun", JobExpirePromoCodes, "success").Return().Once()
	metrics.On("IncJobRun", JobExpirePromoCodes, "error").Return().Once()

	s := newTestScheduler(&mockReservations{}, promoCodes, &mockTimeEntries{}, metrics, testSettings())
	s.execute(JobExpirePromoCodes, s.ExpirePromoCodes)
	s.execute(JobExpirePromoCodes, s.ExpirePromoCodes)

	metrics.AssertExpectations(t)
}

func TestStart_RegistersJobs(t *testing.T) {
	settings := testSettings()
	settings.ForgottenClockOutCron = ""

	s := newTestScheduler(&mockReservations{}, &mockPromoCodes{}, &mockTimeEntries{}, nil, settings)
	require.NoError(t, s.Start())
	defer s.Stop(context.Background())

	assert.Len(t, s.entries, 2)
	assert.Contains(t, s.entries, JobReleaseDeposits)
	assert.NotContains(t, s.entries, JobForgottenClockOut)
	assert.Len(t, s.cron.Entries(), 2)
}

func TestStart_InvalidSchedule(t *testing.T) {
	settings := testSettings()
	settings.ReleaseDepositsCron = "every night"

	s := newTestScheduler(&mockReservations{}, &mockPromoCodes{}, &mockTimeEntries{}, nil, settings)
	assert.Error(t, s.Start())
}
