package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
)

const (
	msgUnauthorized   = "требуется авторизация"
	msgAdminForbidden = "недостаточно прав"
	msgAdminDisabled  = "административный доступ не настроен"
)

// AdminAuth пропускает запросы с заголовком "Authorization: Bearer <token>".
// Пустой token закрывает административные маршруты целиком
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				logger.Warn("AdminAuth: admin token is not configured, %s %s rejected", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusServiceUnavailable, msgAdminDisabled)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			provided := strings.TrimPrefix(header, "Bearer ")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("AdminAuth: invalid token for %s %s from %s", r.Method, r.URL.Path, clientIP(r))
				handlers.RespondForbidden(w, msgAdminForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
