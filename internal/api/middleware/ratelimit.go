package middleware

import (
	"net/http"

	"cotizador/pkg/ratelimit"
)

// RateLimit - middleware для ограничения частоты запросов к API
//
// Общий лимит на весь API, без разбивки по клиентам: дашборд
// обслуживает небольшую команду, а лимит защищает базу от агрессивного
// автообновления вкладок, не от злоумышленников.
func RateLimit(limiter *ratelimit.RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil && !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
