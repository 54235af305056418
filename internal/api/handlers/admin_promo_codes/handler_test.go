package admin_promo_codes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes"
	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context) (*models.PromoCodeListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCodeListResponse), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id int64) (*models.PromoCodeResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCodeResponse), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *models.PromoCodeRequest) (*models.PromoCodeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCodeResponse), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *models.PromoCodeRequest) (*models.PromoCodeResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCodeResponse), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *mockService) *mux.Router {
	h := NewHandler(svc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/admin/promo-codes", h.HandleList).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/promo-codes", h.HandleCreate).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/promo-codes/{promoId}", h.HandleGet).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/promo-codes/{promoId}", h.HandleUpdate).Methods(http.MethodPut)
	router.HandleFunc("/api/admin/promo-codes/{promoId}", h.HandleDelete).Methods(http.MethodDelete)
	return router
}

func do(router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestCreate(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.PromoCodeRequest) bool {
		return req.Code == "welcome" && req.PercentOff != nil && *req.PercentOff == 10
	})).Return(&models.PromoCodeResponse{ID: 2, Code: "WELCOME"}, nil).Once()
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, promocodes.ErrCodeExists).Once()

	router := newRouter(svc)
	body := `{"code":"welcome","percentOff":10,"maxUses":100,"reservationTypes":["daily"]}`
	assert.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/admin/promo-codes", body).Code)
	assert.Equal(t, http.StatusConflict, do(router, http.MethodPost, "/api/admin/promo-codes", body).Code)
}

func TestCRUD(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything).Return(&models.PromoCodeListResponse{PromoCodes: []models.PromoCodeResponse{}}, nil)
	svc.On("Get", mock.Anything, int64(2)).Return(nil, promocodes.ErrPromoCodeNotFound)
	svc.On("Update", mock.Anything, int64(2), mock.Anything).Return(nil, promocodes.ErrInvalidInput)
	svc.On("Delete", mock.Anything, int64(2)).Return(nil)

	router := newRouter(svc)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/admin/promo-codes", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/admin/promo-codes/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPut, "/api/admin/promo-codes/2", `{"code":"X","percentOff":120}`).Code)
	assert.Equal(t, http.StatusNoContent, do(router, http.MethodDelete, "/api/admin/promo-codes/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodDelete, "/api/admin/promo-codes/zero", "").Code)
}
