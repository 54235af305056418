package hr_employees

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CoworkingService/internal/service/employees"
	"github.com/m04kA/SMC-CoworkingService/internal/service/employees/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context, onlyActive bool) (*models.EmployeeListResponse, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployeeListResponse), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployeeResponse), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployeeResponse), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployeeResponse), args.Error(1)
}

func (m *mockService) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *mockService) *mux.Router {
	h := NewHandler(svc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/hr/employees", h.HandleList).Methods(http.MethodGet)
	router.HandleFunc("/api/hr/employees", h.HandleCreate).Methods(http.MethodPost)
	router.HandleFunc("/api/hr/employees/{employeeId}", h.HandleGet).Methods(http.MethodGet)
	router.HandleFunc("/api/hr/employees/{employeeId}", h.HandleUpdate).Methods(http.MethodPut)
	router.HandleFunc("/api/hr/employees/{employeeId}", h.HandleDelete).Methods(http.MethodDelete)
	return router
}

func do(router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

const employeeBody = `{"firstName":"Léa","lastName":"Dubois","email":"lea@example.fr","position":"Accueil","contractType":"cdi","weeklyHours":35,"hireDate":"2026-01-05"}`

func TestList_OnlyActive(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, true).Return(&models.EmployeeListResponse{Employees: []models.EmployeeResponse{{ID: 1}}}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/api/hr/employees?active=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)

	rec = do(newRouter(svc), http.MethodGet, "/api/hr/employees?active=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.EmployeeRequest) bool {
		return req.Email == "lea@example.fr" && req.WeeklyHours == 35
	})).Return(&models.EmployeeResponse{ID: 4}, nil).Once()
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, employees.ErrEmailExists).Once()

	router := newRouter(svc)
	assert.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/hr/employees", employeeBody).Code)
	assert.Equal(t, http.StatusConflict, do(router, http.MethodPost, "/api/hr/employees", employeeBody).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/hr/employees", `{"salary":1}`).Code)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, fmt.Errorf("%w: weeklyHours must be positive", employees.ErrInvalidInput))
	svc.On("Deactivate", mock.Anything, int64(4)).Return(nil)
	svc.On("Deactivate", mock.Anything, int64(5)).Return(employees.ErrEmployeeNotFound)
	svc.On("Get", mock.Anything, int64(6)).Return(nil, employees.ErrInternal)

	router := newRouter(svc)
	rec := do(router, http.MethodPut, "/api/hr/employees/4", employeeBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "weeklyHours must be positive")

	assert.Equal(t, http.StatusNoContent, do(router, http.MethodDelete, "/api/hr/employees/4", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/api/hr/employees/5", "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodGet, "/api/hr/employees/6", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/hr/employees/-1", "").Code)
}
