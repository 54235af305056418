package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) ListEndedWithDeposit(ctx context.Context, before time.Time, deposit domain.DepositStatus) ([]*domain.Reservation, error) {
	args := m.Called(ctx, before, deposit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *mockReservationRepo) Update(ctx context.Context, reservation *domain.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
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

var now = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func newTestService(repo *mockReservationRepo) *Service {
	s := NewService(repo, passthroughTx{}, nopLogger{})
	s.timeProvider = fixedTime{now: now}
	return s
}

func reservationWith(status domain.ReservationStatus, deposit domain.DepositStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:            5,
		Reference:     "3f1c2d4e-0000-4000-8000-000000000005",
		SpaceID:       2,
		Type:          domain.ReservationTypeDaily,
		StartAt:       now.Add(48 * time.Hour),
		EndAt:         now.Add(57 * time.Hour),
		People:        1,
		Status:        status,
		DepositStatus: deposit,
	}
}

func TestCancel_ReleasesAuthorizedHold(t *testing.T) {
	repo := &mockReservationRepo{}
	res := reservationWith(domain.ReservationStatusConfirmed, domain.DepositAuthorized)
	repo.On("GetByReference", mock.Anything, res.Reference).Return(res, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Status == domain.ReservationStatusCancelled &&
			r.DepositStatus == domain.DepositReleased &&
			r.CancelledAt != nil && r.CancelledAt.Equal(now) &&
			*r.CancelReason == "plans changed"
	})).Return(nil)

	resp, err := newTestService(repo).Cancel(context.Background(), res.Reference,
		&models.CancelReservationRequest{Reason: ptr.Ptr("  plans changed ")})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "released", resp.DepositStatus)
	repo.AssertExpectations(t)
}

func TestCancel_PendingDepositFails(t *testing.T) {
	repo := &mockReservationRepo{}
	res := reservationWith(domain.ReservationStatusPending, domain.DepositPending)
	repo.On("GetByReference", mock.Anything, res.Reference).Return(res, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	resp, err := newTestService(repo).Cancel(context.Background(), res.Reference, nil)
	require.NoError(t, err)
	assert.Equal(t, "failed", resp.DepositStatus)
	assert.Nil(t, resp.CancelReason)
}

func TestCancel_Errors(t *testing.T) {
	repo := &mockReservationRepo{}
	repo.On("GetByReference", mock.Anything, "missing").Return(nil, reservationRepo.ErrReservationNotFound)
	repo.On("GetByReference", mock.Anything, "done").
		Return(reservationWith(domain.ReservationStatusCompleted, domain.DepositNotRequired), nil)
	repo.On("GetByReference", mock.Anything, "broken").Return(nil, errors.New("db down"))

	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.Cancel(context.Background(), "done", nil)
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), "broken", nil)
	assert.ErrorIs(t, err, ErrInternal)

	long := make([]byte, domain.MaxCancellationReason+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.Cancel(context.Background(), "missing", &models.CancelReservationRequest{Reason: ptr.Ptr(string(long))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ReservationStatus
		to      string
		wantErr error
	}{
		{name: "pending to confirmed", from: domain.ReservationStatusPending, to: "confirmed"},
		{name: "confirmed to completed", from: domain.ReservationStatusConfirmed, to: "completed"},
		{name: "confirmed to cancelled", from: domain.ReservationStatusConfirmed, to: "cancelled"},
		{name: "pending to completed", from: domain.ReservationStatusPending, to: "completed", wantErr: ErrInvalidStatusTransition},
		{name: "cancelled is final", from: domain.ReservationStatusCancelled, to: "confirmed", wantErr: ErrInvalidStatusTransition},
		{name: "unknown status", from: domain.ReservationStatusPending, to: "archived", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReservationRepo{}
			repo.On("GetByID", mock.Anything, int64(5)).Return(reservationWith(tt.from, domain.DepositNotRequired), nil)
			repo.On("Update", mock.Anything, mock.Anything).Return(nil)

			resp, err := newTestService(repo).UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
		})
	}
}

func TestUpdateDeposit(t *testing.T) {
	t.Run("authorizing confirms pending reservation", func(t *testing.T) {
		repo := &mockReservationRepo{}
		repo.On("GetByID", mock.Anything, int64(5)).
			Return(reservationWith(domain.ReservationStatusPending, domain.DepositPending), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		resp, err := newTestService(repo).UpdateDeposit(context.Background(), 5,
			&models.UpdateDepositRequest{Status: "authorized", HoldRef: ptr.Ptr("pi_123")})
		require.NoError(t, err)

		assert.Equal(t, "authorized", resp.DepositStatus)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, "pi_123", *resp.DepositHoldRef)
	})

	t.Run("captured cannot be released", func(t *testing.T) {
		repo := &mockReservationRepo{}
		repo.On("GetByID", mock.Anything, int64(5)).
			Return(reservationWith(domain.ReservationStatusConfirmed, domain.DepositCaptured), nil)

		_, err := newTestService(repo).UpdateDeposit(context.Background(), 5, &models.UpdateDepositRequest{Status: "released"})
		assert.ErrorIs(t, err, ErrInvalidDepositTransition)
	})

	t.Run("not required has no transitions", func(t *testing.T) {
		repo := &mockReservationRepo{}
		repo.On("GetByID", mock.Anything, int64(5)).
			Return(reservationWith(domain.ReservationStatusConfirmed, domain.DepositNotRequired), nil)

		_, err := newTestService(repo).UpdateDeposit(context.Background(), 5, &models.UpdateDepositRequest{Status: "authorized"})
		assert.ErrorIs(t, err, ErrInvalidDepositTransition)
	})
}

func TestList_InvalidFilter(t *testing.T) {
	svc := newTestService(&mockReservationRepo{})

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	from := now
	to := now.Add(-time.Hour)
	_, err = svc.List(context.Background(), &models.ListReservationsRequest{From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReleaseExpiredHolds(t *testing.T) {
	repo := &mockReservationRepo{}
	before := now.AddDate(0, 0, -7)

	first := reservationWith(domain.ReservationStatusConfirmed, domain.DepositAuthorized)
	second := reservationWith(domain.ReservationStatusConfirmed, domain.DepositAuthorized)
	second.ID = 6

	repo.On("ListEndedWithDeposit", mock.Anything, before, domain.DepositAuthorized).
		Return([]*domain.Reservation{first, second}, nil)
	repo.On("Update", mock.Anything, first).Return(nil)
	repo.On("Update", mock.Anything, second).Return(errors.New("conflict"))

	released, err := newTestService(repo).ReleaseExpiredHolds(context.Background(), before)
	require.NoError(t, err)

	assert.Equal(t, 1, released)
	assert.Equal(t, domain.DepositReleased, first.DepositStatus)
	assert.Equal(t, domain.ReservationStatusCompleted, first.Status)
}
