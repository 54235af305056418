package clock_in

import (
	"context"

	clockIn "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_in"
)

type ClockInUseCase interface {
	Execute(ctx context.Context, req *clockIn.Request) (*clockIn.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
