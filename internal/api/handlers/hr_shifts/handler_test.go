package hr_shifts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/infra/export"
	"github.com/m04kA/SMC-CoworkingService/internal/service/shifts"
	"github.com/m04kA/SMC-CoworkingService/internal/service/shifts/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context, req *models.ListShiftsRequest) (*models.ShiftListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftListResponse), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *models.ShiftRequest) (*models.ShiftResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftResponse), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *models.ShiftRequest) (*models.ShiftResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftResponse), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) Export(ctx context.Context, req *models.ListShiftsRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var paris, _ = time.LoadLocation("Europe/Paris")

func newRouter(svc *mockService) *mux.Router {
	h := NewHandler(svc, paris, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/hr/shifts", h.HandleList).Methods(http.MethodGet)
	router.HandleFunc("/api/hr/shifts", h.HandleCreate).Methods(http.MethodPost)
	router.HandleFunc("/api/hr/shifts/export", h.HandleExport).Methods(http.MethodGet)
	router.HandleFunc("/api/hr/shifts/{shiftId}", h.HandleUpdate).Methods(http.MethodPut)
	router.HandleFunc("/api/hr/shifts/{shiftId}", h.HandleDelete).Methods(http.MethodDelete)
	return router
}

func do(router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestList_ParsesFilter(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListShiftsRequest) bool {
		return req.EmployeeID != nil && *req.EmployeeID == 4 &&
			req.From != nil && req.From.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, paris)) &&
			req.To == nil
	})).Return(&models.ShiftListResponse{Shifts: []models.ShiftResponse{}}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/api/hr/shifts?employeeId=4&from=2026-10-19", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreate_Errors(t *testing.T) {
	body := `{"employeeId":4,"date":"2026-10-20","startTime":"09:00","endTime":"13:00"}`

	tests := []struct {
		err  error
		want int
	}{
		{err: shifts.ErrShiftOverlap, want: http.StatusConflict},
		{err: shifts.ErrEmployeeNotFound, want: http.StatusNotFound},
		{err: shifts.ErrEmployeeInactive, want: http.StatusBadRequest},
		{err: shifts.ErrInvalidInput, want: http.StatusBadRequest},
		{err: shifts.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		svc := &mockService{}
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)
		assert.Equal(t, tt.want, do(newRouter(svc), http.MethodPost, "/api/hr/shifts", body).Code, tt.err.Error())
	}
}

func TestExport(t *testing.T) {
	svc := &mockService{}
	svc.On("Export", mock.Anything, mock.Anything).Return([]byte("xlsx"), nil)

	router := newRouter(svc)
	rec := do(router, http.MethodGet, "/api/hr/shifts/export?from=2026-10-19&to=2026-10-25", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "planning_2026-10-19_2026-10-25.xlsx")

	rec = do(router, http.MethodGet, "/api/hr/shifts/export?from=2026-10-19", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete(t *testing.T) {
	svc := &mockService{}
	svc.On("Delete", mock.Anything, int64(9)).Return(nil)
	svc.On("Delete", mock.Anything, int64(10)).Return(shifts.ErrShiftNotFound)

	router := newRouter(svc)
	assert.Equal(t, http.StatusNoContent, do(router, http.MethodDelete, "/api/hr/shifts/9", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/api/hr/shifts/10", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodDelete, "/api/hr/shifts/x", "").Code)
}
