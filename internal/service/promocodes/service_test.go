package promocodes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	promoRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/promocode"
	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes/models"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type mockPromoRepo struct{ mock.Mock }

func (m *mockPromoRepo) Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	args := m.Called(ctx, promo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoCode), args.Error(1)
}

func (m *mockPromoRepo) GetByID(ctx context.Context, id int64) (*domain.PromoCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoCode), args.Error(1)
}

func (m *mockPromoRepo) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoCode), args.Error(1)
}

func (m *mockPromoRepo) List(ctx context.Context) ([]*domain.PromoCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PromoCode), args.Error(1)
}

func (m *mockPromoRepo) Update(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	args := m.Called(ctx, promo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoCode), args.Error(1)
}

func (m *mockPromoRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPromoRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestService(repo *mockPromoRepo) *Service {
	s := NewService(repo, nopLogger{})
	s.timeProvider = fixedTime{now: now}
	return s
}

func TestCreate_UppercasesCode(t *testing.T) {
	repo := &mockPromoRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.PromoCode) bool {
		return p.Code == "WELCOME10" && p.IsActive && p.ReservationTypes[0] == domain.ReservationTypeDaily
	})).Return(&domain.PromoCode{ID: 1, Code: "WELCOME10", IsActive: true}, nil)

	resp, err := newTestService(repo).Create(context.Background(), &models.PromoCodeRequest{
		Code:             " welcome10 ",
		PercentOff:       ptr.Ptr(10.0),
		ReservationTypes: []string{"Daily"},
	})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", resp.Code)
}

func TestCreate_Validation(t *testing.T) {
	from := now
	until := now.Add(-time.Hour)

	tests := []struct {
		name string
		req  *models.PromoCodeRequest
	}{
		{name: "no discount", req: &models.PromoCodeRequest{Code: "NONE"}},
		{name: "both discounts", req: &models.PromoCodeRequest{Code: "BOTH", PercentOff: ptr.Ptr(10.0), AmountOffCents: ptr.Ptr(int64(500))}},
		{name: "percent too big", req: &models.PromoCodeRequest{Code: "BIG", PercentOff: ptr.Ptr(120.0)}},
		{name: "zero amount", req: &models.PromoCodeRequest{Code: "ZERO", AmountOffCents: ptr.Ptr(int64(0))}},
		{name: "short code", req: &models.PromoCodeRequest{Code: "AB", PercentOff: ptr.Ptr(10.0)}},
		{name: "bad characters", req: &models.PromoCodeRequest{Code: "HELLO WORLD", PercentOff: ptr.Ptr(10.0)}},
		{name: "until before from", req: &models.PromoCodeRequest{Code: "DATES", PercentOff: ptr.Ptr(10.0), ValidFrom: &from, ValidUntil: &until}},
		{name: "unknown type", req: &models.PromoCodeRequest{Code: "TYPE", PercentOff: ptr.Ptr(10.0), ReservationTypes: []string{"yearly"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPromoRepo{}
			_, err := newTestService(repo).Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_CodeExists(t *testing.T) {
	repo := &mockPromoRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, promoRepo.ErrCodeExists)

	_, err := newTestService(repo).Create(context.Background(), &models.PromoCodeRequest{Code: "DUP", PercentOff: ptr.Ptr(5.0)})
	assert.ErrorIs(t, err, ErrCodeExists)
}

func TestUpdate_KeepsUsage(t *testing.T) {
	repo := &mockPromoRepo{}
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.PromoCode{ID: 3, Code: "SPRING", UsedCount: 7, IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.PromoCode) bool {
		return p.ID == 3 && p.UsedCount == 7 && p.IsActive
	})).Return(&domain.PromoCode{ID: 3, Code: "SPRING", UsedCount: 7}, nil)

	_, err := newTestService(repo).Update(context.Background(), 3, &models.PromoCodeRequest{Code: "spring", AmountOffCents: ptr.Ptr(int64(1000))})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestValidate(t *testing.T) {
	expired := now.Add(-24 * time.Hour)

	repo := &mockPromoRepo{}
	repo.On("GetByCode", mock.Anything, "TEN").
		Return(&domain.PromoCode{Code: "TEN", PercentOff: ptr.Ptr(10.0), IsActive: true}, nil)
	repo.On("GetByCode", mock.Anything, "OLD").
		Return(&domain.PromoCode{Code: "OLD", AmountOffCents: ptr.Ptr(int64(500)), ValidUntil: &expired, IsActive: true}, nil)
	repo.On("GetByCode", mock.Anything, "MONTH").
		Return(&domain.PromoCode{Code: "MONTH", PercentOff: ptr.Ptr(20.0), IsActive: true,
			ReservationTypes: []domain.ReservationType{domain.ReservationTypeMonthly}}, nil)
	repo.On("GetByCode", mock.Anything, "NOPE").Return(nil, promoRepo.ErrPromoCodeNotFound)

	svc := newTestService(repo)

	resp, err := svc.Validate(context.Background(), &models.ValidatePromoCodeRequest{Code: "ten", Type: "hourly", AmountCents: 4550})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, int64(455), resp.DiscountCents)

	resp, err = svc.Validate(context.Background(), &models.ValidatePromoCodeRequest{Code: "OLD", AmountCents: 1000})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.NotNil(t, resp.Reason)

	resp, err = svc.Validate(context.Background(), &models.ValidatePromoCodeRequest{Code: "MONTH", Type: "daily", AmountCents: 1000})
	require.NoError(t, err)
	assert.False(t, resp.Valid)

	_, err = svc.Validate(context.Background(), &models.ValidatePromoCodeRequest{Code: "NOPE"})
	assert.ErrorIs(t, err, ErrPromoCodeNotFound)

	_, err = svc.Validate(context.Background(), &models.ValidatePromoCodeRequest{Code: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeactivateExpired(t *testing.T) {
	repo := &mockPromoRepo{}
	repo.On("DeactivateExpired", mock.Anything, now).Return(int64(2), nil)

	count, err := newTestService(repo).DeactivateExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
