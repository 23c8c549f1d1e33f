// Файл: ShiftTracker/internal/api/middleware.go
package api

import (
	"crypto/hmac"
	"log"
	"net/http"
)

// AuthMiddleware проверяет заголовок X-Api-Token.
// Если токен в конфигурации не задан, проверка пропускается (локальный запуск).
// AuthMiddleware validates the X-Api-Token header.
// When no token is configured, the check is skipped (local run).
func AuthMiddleware(apiToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("X-Api-Token")
			if header == "" {
				http.Error(w, "Unauthorized: Missing X-Api-Token header", http.StatusUnauthorized)
				return
			}

			// Сравнение постоянного времени, чтобы не утекала длина совпадения
			if !hmac.Equal([]byte(header), []byte(apiToken)) {
				log.Printf("AuthMiddleware: неверный API токен с адреса %s", r.RemoteAddr)
				http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
