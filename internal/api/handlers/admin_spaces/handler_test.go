package admin_spaces

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

	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context, onlyActive bool) (*models.SpaceListResponse, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpaceListResponse), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id int64, onlyActive bool) (*models.SpaceResponse, error) {
	args := m.Called(ctx, id, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpaceResponse), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *models.SpaceRequest) (*models.SpaceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpaceResponse), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *models.SpaceRequest) (*models.SpaceResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpaceResponse), args.Error(1)
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
	router.HandleFunc("/api/admin/space-configurations", h.HandleList).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/space-configurations", h.HandleCreate).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/space-configurations/{spaceId}", h.HandleGet).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/space-configurations/{spaceId}", h.HandleUpdate).Methods(http.MethodPut)
	router.HandleFunc("/api/admin/space-configurations/{spaceId}", h.HandleDelete).Methods(http.MethodDelete)
	return router
}

func do(router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

const spaceBody = `{
	"slug": "salle-eiffel",
	"name": "Salle Eiffel",
	"kind": "private",
	"capacity": 8,
	"prices": {"hourlyCents": 2500, "dailyCents": 15000},
	"openingHours": {"monday": {"isOpen": true, "openTime": "09:00", "closeTime": "18:00"}}
}`

func TestList_IncludesInactive(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, false).Return(&models.SpaceListResponse{Spaces: []models.SpaceResponse{}}, nil)
	svc.On("Get", mock.Anything, int64(3), false).Return(&models.SpaceResponse{ID: 3}, nil)

	router := newRouter(svc)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/admin/space-configurations", "").Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/admin/space-configurations/3", "").Code)
	svc.AssertExpectations(t)
}

func TestCreate(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.SpaceRequest) bool {
		return req.Slug == "salle-eiffel" &&
			req.Prices.DailyCents == 15000 &&
			req.OpeningHours.Monday.OpenTime == "09:00"
	})).Return(&models.SpaceResponse{ID: 7, Slug: "salle-eiffel"}, nil)

	rec := do(newRouter(svc), http.MethodPost, "/api/admin/space-configurations", spaceBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: spaces.ErrSlugExists, want: http.StatusConflict},
		{err: fmt.Errorf("%w: monday closes before it opens", spaces.ErrInvalidOpeningHours), want: http.StatusBadRequest},
		{err: spaces.ErrInvalidPriceTiers, want: http.StatusBadRequest},
		{err: spaces.ErrSpaceNotFound, want: http.StatusNotFound},
		{err: spaces.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		svc := &mockService{}
		svc.On("Update", mock.Anything, int64(7), mock.Anything).Return(nil, tt.err)
		rec := do(newRouter(svc), http.MethodPut, "/api/admin/space-configurations/7", spaceBody)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}

	svc := &mockService{}
	svc.On("Deactivate", mock.Anything, int64(7)).Return(nil)
	assert.Equal(t, http.StatusNoContent, do(newRouter(svc), http.MethodDelete, "/api/admin/space-configurations/7", "").Code)
}
