package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
)

// Recover перехватывает панику обработчика и отвечает 500
func Recover(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error("Recover: panic in %s %s request_id=%s: %v\n%s",
						r.Method, r.URL.Path, RequestIDFromContext(r.Context()), p, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
