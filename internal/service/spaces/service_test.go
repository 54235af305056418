package spaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type mockSpaceRepo struct{ mock.Mock }

func (m *mockSpaceRepo) Create(ctx context.Context, space *domain.SpaceConfiguration) (*domain.SpaceConfiguration, error) {
	args := m.Called(ctx, space)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpaceConfiguration), args.Error(1)
}

func (m *mockSpaceRepo) GetByID(ctx context.Context, id int64) (*domain.SpaceConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpaceConfiguration), args.Error(1)
}

func (m *mockSpaceRepo) List(ctx context.Context, onlyActive bool) ([]*domain.SpaceConfiguration, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SpaceConfiguration), args.Error(1)
}

func (m *mockSpaceRepo) Update(ctx context.Context, space *domain.SpaceConfiguration) (*domain.SpaceConfiguration, error) {
	args := m.Called(ctx, space)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpaceConfiguration), args.Error(1)
}

func (m *mockSpaceRepo) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validSpaceRequest() *models.SpaceRequest {
	weekday := domain.DaySchedule{IsOpen: true, OpenTime: "08:30", CloseTime: "19:30"}
	return &models.SpaceRequest{
		Slug:     " Open-Space ",
		Name:     "Open space",
		Kind:     "open_space",
		Capacity: 20,
		Prices:   domain.Prices{HourlyCents: 800, DailyCents: 3500, WeeklyCents: 15000, MonthlyCents: 45000},
		PriceTiers: []domain.PriceTier{
			{MinPeople: 1, MaxPeople: 4},
			{MinPeople: 5, MaxPeople: 0, Prices: domain.Prices{HourlyCents: 700}},
		},
		SlotStepMinutes:    30,
		MinDurationMinutes: 60,
		OpeningHours: domain.OpeningHours{
			Monday: weekday, Tuesday: weekday, Wednesday: weekday, Thursday: weekday, Friday: weekday,
		},
	}
}

func TestCreate_NormalizesAndSaves(t *testing.T) {
	repo := &mockSpaceRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.SpaceConfiguration) bool {
		return s.Slug == "open-space" && s.IsActive && s.Kind == domain.SpaceKindOpenSpace
	})).Return(&domain.SpaceConfiguration{ID: 4, Slug: "open-space", IsActive: true}, nil)

	resp, err := NewService(repo, nopLogger{}).Create(context.Background(), validSpaceRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.ID)
	assert.NotNil(t, resp.PriceTiers)
	repo.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.SpaceRequest)
		wantErr error
	}{
		{name: "missing name", mutate: func(r *models.SpaceRequest) { r.Name = "" }, wantErr: ErrInvalidInput},
		{name: "bad slug", mutate: func(r *models.SpaceRequest) { r.Slug = "open space!" }, wantErr: ErrInvalidInput},
		{name: "unknown kind", mutate: func(r *models.SpaceRequest) { r.Kind = "booth" }, wantErr: ErrInvalidInput},
		{name: "capacity zero", mutate: func(r *models.SpaceRequest) { r.Capacity = 0 }, wantErr: ErrInvalidInput},
		{name: "capacity too big", mutate: func(r *models.SpaceRequest) { r.Capacity = 501 }, wantErr: ErrInvalidInput},
		{name: "negative price", mutate: func(r *models.SpaceRequest) { r.Prices.DailyCents = -1 }, wantErr: ErrInvalidInput},
		{name: "step does not divide day", mutate: func(r *models.SpaceRequest) { r.SlotStepMinutes = 50 }, wantErr: ErrInvalidInput},
		{name: "step too small", mutate: func(r *models.SpaceRequest) { r.SlotStepMinutes = 10 }, wantErr: ErrInvalidInput},
		{name: "min duration not multiple", mutate: func(r *models.SpaceRequest) { r.MinDurationMinutes = 45 }, wantErr: ErrInvalidInput},
		{
			name: "open after close",
			mutate: func(r *models.SpaceRequest) {
				r.OpeningHours.Monday = domain.DaySchedule{IsOpen: true, OpenTime: "18:00", CloseTime: "09:00"}
			},
			wantErr: ErrInvalidOpeningHours,
		},
		{
			name: "bad time format",
			mutate: func(r *models.SpaceRequest) {
				r.OpeningHours.Sunday = domain.DaySchedule{IsOpen: true, OpenTime: "9h", CloseTime: "18:00"}
			},
			wantErr: ErrInvalidOpeningHours,
		},
		{
			name: "overlapping tiers",
			mutate: func(r *models.SpaceRequest) {
				r.PriceTiers = []domain.PriceTier{{MinPeople: 1, MaxPeople: 5}, {MinPeople: 5, MaxPeople: 10}}
			},
			wantErr: ErrInvalidPriceTiers,
		},
		{
			name: "open ended tier followed by another",
			mutate: func(r *models.SpaceRequest) {
				r.PriceTiers = []domain.PriceTier{{MinPeople: 1}, {MinPeople: 8}}
			},
			wantErr: ErrInvalidPriceTiers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSpaceRepo{}
			req := validSpaceRequest()
			tt.mutate(req)

			_, err := NewService(repo, nopLogger{}).Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_SlugExists(t *testing.T) {
	repo := &mockSpaceRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, spaceRepo.ErrSlugExists)

	_, err := NewService(repo, nopLogger{}).Create(context.Background(), validSpaceRequest())
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestUpdate_KeepsActiveFlag(t *testing.T) {
	repo := &mockSpaceRepo{}
	repo.On("GetByID", mock.Anything, int64(4)).Return(&domain.SpaceConfiguration{ID: 4, IsActive: false}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.SpaceConfiguration) bool {
		return s.ID == 4 && !s.IsActive
	})).Return(&domain.SpaceConfiguration{ID: 4}, nil)

	_, err := NewService(repo, nopLogger{}).Update(context.Background(), 4, validSpaceRequest())
	require.NoError(t, err)
	repo.AssertExpectations(t)

	req := validSpaceRequest()
	req.IsActive = ptr.Ptr(true)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, spaceRepo.ErrSpaceNotFound)
	_, err = NewService(repo, nopLogger{}).Update(context.Background(), 5, req)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestGet_HidesInactiveFromPublic(t *testing.T) {
	repo := &mockSpaceRepo{}
	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.SpaceConfiguration{ID: 9, IsActive: false}, nil)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Get(context.Background(), 9, true)
	assert.ErrorIs(t, err, ErrSpaceNotFound)

	resp, err := svc.Get(context.Background(), 9, false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestDeactivate_NotFound(t *testing.T) {
	repo := &mockSpaceRepo{}
	repo.On("Deactivate", mock.Anything, int64(1)).Return(spaceRepo.ErrSpaceNotFound)

	err := NewService(repo, nopLogger{}).Deactivate(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}
