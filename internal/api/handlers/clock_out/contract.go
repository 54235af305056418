package clock_out

import (
	"context"

	clockOut "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_out"
)

type ClockOutUseCase interface {
	Execute(ctx context.Context, req *clockOut.Request) (*clockOut.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
