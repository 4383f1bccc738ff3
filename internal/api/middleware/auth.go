package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	// HeaderUserID заголовок с идентификатором администратора
	// Заполняется API-шлюзом после проверки сессии
	HeaderUserID = "X-User-ID"

	msgUnauthorized = "требуется авторизация"
)

// Auth проверяет наличие заголовка администратора на защищенных маршрутах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderUserID) == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
