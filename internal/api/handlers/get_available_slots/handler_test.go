package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CoworkingService/internal/usecase/get_available_slots"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/space-configurations/{spaceId}/available-slots", NewHandler(uc, nopLogger{}).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_EndSlots(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.SpaceID == 8 &&
			req.Date.Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)) &&
			req.StartTime != nil && *req.StartTime == "09:00" &&
			req.People == 2
	})).Return(&getAvailableSlots.Response{
		Date:     time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		SpaceID:  8,
		Type:     domain.ReservationTypeHourly,
		Open:     true,
		Capacity: 4,
		EndSlots: []getAvailableSlots.EndSlot{
			{EndTime: "10:00", DurationMinutes: 60, AvailableCapacity: 4},
			{EndTime: "14:00", DurationMinutes: 300, DailyRateApplied: true, AvailableCapacity: 4},
		},
	}, nil)

	rec := serve(uc, "/api/space-configurations/8/available-slots?date=2026-10-20&start=09:00&people=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-20", body.Date)
	assert.NotNil(t, body.StartSlots)
	require.Len(t, body.EndSlots, 2)
	assert.True(t, body.EndSlots[1].DailyRateApplied)
	assert.Nil(t, body.Period)
}

func TestHandle_Errors(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool { return req.SpaceID == 1 })).
		Return(nil, getAvailableSlots.ErrSpaceNotFound)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool { return req.SpaceID == 2 })).
		Return(nil, getAvailableSlots.ErrInvalidStartTime)

	tests := []struct {
		target string
		want   int
	}{
		{target: "/api/space-configurations/1/available-slots?date=2026-10-20", want: http.StatusNotFound},
		{target: "/api/space-configurations/2/available-slots?date=2026-10-20&start=09:30", want: http.StatusBadRequest},
		{target: "/api/space-configurations/3/available-slots", want: http.StatusBadRequest},
		{target: "/api/space-configurations/3/available-slots?date=20-10-2026", want: http.StatusBadRequest},
		{target: "/api/space-configurations/3/available-slots?date=2026-10-20&people=two", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(uc, tt.target).Code)
		})
	}
}
