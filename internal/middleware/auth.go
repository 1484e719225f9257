// middleware/auth.go
// Middleware untuk cek API key di endpoint /mcp/*

package middleware

import (
	"crypto/subtle"
	"net/http"
)

// APIKey menolak request tanpa header X-API-Key yang cocok.
// expected kosong = auth nonaktif.
func APIKey(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" {
				next.ServeHTTP(w, r)
				return
			}
			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
