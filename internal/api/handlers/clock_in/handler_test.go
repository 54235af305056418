package clock_in

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	clockIn "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_in"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *clockIn.Request) (*clockIn.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clockIn.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/time-entries/clock-in", strings.NewReader(body)))
	return rec
}

func TestHandle_ClockedIn(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &clockIn.Request{EmployeeID: 4}).Return(&clockIn.Response{
		Entry: &domain.TimeEntry{
			ID:         21,
			EmployeeID: 4,
			ClockIn:    time.Date(2026, 10, 19, 8, 58, 0, 0, time.UTC),
			Source:     domain.TimeEntrySourceKiosk,
		},
		Employee: "Léa Dubois",
	}, nil)

	rec := post(uc, `{"employeeId":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body ClockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Léa Dubois", body.Employee)
	require.NotNil(t, body.Entry)
	assert.True(t, body.Entry.Running)
	assert.Equal(t, int64(21), body.Entry.ID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: clockIn.ErrEmployeeNotFound, want: http.StatusNotFound},
		{name: "inactive", err: clockIn.ErrEmployeeInactive, want: http.StatusBadRequest},
		{name: "already running", err: clockIn.ErrAlreadyClockedIn, want: http.StatusConflict},
		{name: "internal", err: clockIn.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			assert.Equal(t, tt.want, post(uc, `{"employeeId":4}`).Code)
		})
	}

	assert.Equal(t, http.StatusBadRequest, post(&mockUseCase{}, `{"employeeId":"4"}`).Code)
}
