package validate_promo_code

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes"
	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Validate(ctx context.Context, req *models.ValidatePromoCodeRequest) (*models.ValidatePromoCodeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ValidatePromoCodeResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(svc *mockService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/promo-codes/validate", strings.NewReader(body)))
	return rec
}

func TestHandle_NotApplicableIsNotAnError(t *testing.T) {
	reason := "code expired"
	svc := &mockService{}
	svc.On("Validate", mock.Anything, &models.ValidatePromoCodeRequest{Code: "summer", Type: "daily", AmountCents: 4500}).
		Return(&models.ValidatePromoCodeResponse{Code: "SUMMER", Reason: &reason}, nil)

	rec := post(svc, `{"code":"summer","type":"daily","amountCents":4500}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ValidatePromoCodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Valid)
	require.NotNil(t, body.Reason)
	assert.Equal(t, reason, *body.Reason)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "unknown field", body: `{"code":"X","discount":10}`, want: http.StatusBadRequest},
		{name: "invalid", body: `{"code":""}`, err: promocodes.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", body: `{"code":"NOPE"}`, err: promocodes.ErrPromoCodeNotFound, want: http.StatusNotFound},
		{name: "internal", body: `{"code":"X"}`, err: promocodes.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Validate", mock.Anything, mock.Anything).Return(nil, tt.err)
			assert.Equal(t, tt.want, post(svc, tt.body).Code)
		})
	}
}
