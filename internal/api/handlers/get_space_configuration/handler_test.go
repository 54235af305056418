package get_space_configuration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Get(ctx context.Context, id int64, onlyActive bool) (*models.SpaceResponse, error) {
	args := m.Called(ctx, id, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpaceResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/space-configurations/{spaceId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, int64(7), true).Return(&models.SpaceResponse{ID: 7, Name: "Salle Eiffel"}, nil)
	svc.On("Get", mock.Anything, int64(8), true).Return(nil, spaces.ErrSpaceNotFound)
	svc.On("Get", mock.Anything, int64(9), true).Return(nil, fmt.Errorf("%w: db down", spaces.ErrInternal))

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/space-configurations/7", want: http.StatusOK},
		{path: "/api/space-configurations/8", want: http.StatusNotFound},
		{path: "/api/space-configurations/9", want: http.StatusInternalServerError},
		{path: "/api/space-configurations/abc", want: http.StatusBadRequest},
		{path: "/api/space-configurations/0", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(svc, tt.path).Code)
		})
	}
}
