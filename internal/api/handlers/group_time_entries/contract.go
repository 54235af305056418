package group_time_entries

import (
	"context"

	groupTimeEntries "github.com/m04kA/SMC-CoworkingService/internal/usecase/group_time_entries"
)

type GroupTimeEntriesUseCase interface {
	Execute(ctx context.Context, req *groupTimeEntries.Request) (*groupTimeEntries.Response, error)
	Export(ctx context.Context, req *groupTimeEntries.Request) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
