package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/mahfadha/wallet-gateway/src/internal/logger"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKey gates the review endpoints behind a shared admin key. Only the
// bcrypt hash of the key is configured on the server.
func AdminKey(keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				logger.Error("admin key middleware missing server configuration", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "server auth configuration is missing", http.StatusInternalServerError)
				return
			}

			key := r.Header.Get(adminKeyHeader)
			if key == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
				logger.Info("admin key middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "invalid_or_missing",
				})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
