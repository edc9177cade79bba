package middleware

import (
	"net/http"

	"github.com/kritsadaK/TTB-BookingService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID на защищённых маршрутах.
// Идентификацию администратора даёт вышестоящий gateway, здесь только
// отсекаем анонимные запросы
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(userIDHeader) == "" {
			handlers.RespondForbidden(w, "требуется заголовок X-User-ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}
