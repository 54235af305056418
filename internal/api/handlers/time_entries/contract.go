package time_entries

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/timeentries/models"
)

type TimeEntryService interface {
	List(ctx context.Context, req *models.ListTimeEntriesRequest) (*models.TimeEntryListResponse, error)
	Create(ctx context.Context, req *models.TimeEntryRequest) (*models.TimeEntryResponse, error)
	Update(ctx context.Context, id int64, req *models.TimeEntryRequest) (*models.TimeEntryResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
