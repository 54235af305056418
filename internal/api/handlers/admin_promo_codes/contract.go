package admin_promo_codes

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/promocodes/models"
)

type PromoCodeService interface {
	List(ctx context.Context) (*models.PromoCodeListResponse, error)
	Get(ctx context.Context, id int64) (*models.PromoCodeResponse, error)
	Create(ctx context.Context, req *models.PromoCodeRequest) (*models.PromoCodeResponse, error)
	Update(ctx context.Context, id int64, req *models.PromoCodeRequest) (*models.PromoCodeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
