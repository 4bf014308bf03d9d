package middleware

import (
	"net/http"
	"strings"

	"cotizador/pkg/crypto"
)

// Auth - middleware для аутентификации запросов к API дашборда
//
// Проверяет Bearer токен из заголовка Authorization против bcrypt-хэша
// из конфигурации (DASHBOARD_TOKEN_HASH). Сам токен на сервере не
// хранится - только его хэш.
//
// Если хэш не настроен (пустая строка), аутентификация отключена:
// дашборд разворачивается и во внутренних сетях без токена.
func Auth(tokenHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !crypto.CheckTokenMatch(token, tokenHash) {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
