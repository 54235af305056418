package employees

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-CoworkingService/internal/service/employees/models"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type mockEmployeeRepo struct{ mock.Mock }

func (m *mockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) List(ctx context.Context, filter domain.EmployeesFilter) ([]*domain.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validEmployeeRequest() *models.EmployeeRequest {
	return &models.EmployeeRequest{
		FirstName:    "Léa",
		LastName:     "Dubois",
		Email:        "Lea.Dubois@Example.fr",
		Position:     "Accueil",
		ContractType: "cdi",
		WeeklyHours:  35,
		HireDate:     "2025-09-01",
	}
}

func TestCreate(t *testing.T) {
	repo := &mockEmployeeRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Employee) bool {
		return e.Email == "lea.dubois@example.fr" && e.IsActive && e.HireDate.Day() == 1
	})).Return(&domain.Employee{ID: 2, FirstName: "Léa", LastName: "Dubois", ContractType: domain.ContractCDI}, nil)

	resp, err := NewService(repo, nopLogger{}).Create(context.Background(), validEmployeeRequest())
	require.NoError(t, err)
	assert.Equal(t, "Léa Dubois", resp.FullName)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.EmployeeRequest)
	}{
		{name: "missing last name", mutate: func(r *models.EmployeeRequest) { r.LastName = " " }},
		{name: "bad email", mutate: func(r *models.EmployeeRequest) { r.Email = "lea" }},
		{name: "unknown contract", mutate: func(r *models.EmployeeRequest) { r.ContractType = "zero-hours" }},
		{name: "weekly hours too low", mutate: func(r *models.EmployeeRequest) { r.WeeklyHours = 0.5 }},
		{name: "weekly hours too high", mutate: func(r *models.EmployeeRequest) { r.WeeklyHours = 49 }},
		{name: "bad hire date", mutate: func(r *models.EmployeeRequest) { r.HireDate = "01/09/2025" }},
		{name: "cdd without end date", mutate: func(r *models.EmployeeRequest) { r.ContractType = "cdd" }},
		{
			name: "interim ends before hire",
			mutate: func(r *models.EmployeeRequest) {
				r.ContractType = "interim"
				r.EndDate = ptr.Ptr("2025-08-01")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEmployeeRepo{}
			req := validEmployeeRequest()
			tt.mutate(req)

			_, err := NewService(repo, nopLogger{}).Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_FixedTermWithEndDate(t *testing.T) {
	repo := &mockEmployeeRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Employee{ID: 3}, nil)

	req := validEmployeeRequest()
	req.ContractType = "cdd"
	req.EndDate = ptr.Ptr("2026-02-28")

	_, err := NewService(repo, nopLogger{}).Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreate_EmailExists(t *testing.T) {
	repo := &mockEmployeeRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, employeeRepo.ErrEmailExists)

	_, err := NewService(repo, nopLogger{}).Create(context.Background(), validEmployeeRequest())
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockEmployeeRepo{}
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, employeeRepo.ErrEmployeeNotFound)

	_, err := NewService(repo, nopLogger{}).Update(context.Background(), 9, validEmployeeRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestList_PassesFilter(t *testing.T) {
	repo := &mockEmployeeRepo{}
	repo.On("List", mock.Anything, domain.EmployeesFilter{OnlyActive: true}).Return([]*domain.Employee{{ID: 1}}, nil)

	resp, err := NewService(repo, nopLogger{}).List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, resp.Employees, 1)
}
