// internal/auth/middleware.go
package auth

import (
	"context"
	"crypto/hmac"
	"net/http"
	"strings"
)

type contextKey string

const TenantIDKey contextKey = "tenant_id"

// JWTAuthMiddleware guards the dashboard API. Webhook routes use
// SecretEqual instead; the voice platform cannot mint tokens.
func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		claims, err := ValidateToken(tokenStr)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), TenantIDKey, claims.TenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTenantID extracts tenant_id from context
func GetTenantID(r *http.Request) string {
	if val := r.Context().Value(TenantIDKey); val != nil {
		return val.(string)
	}
	return ""
}

// SecretEqual compares a presented webhook secret against the configured one
// in constant time. Both empty is still a mismatch.
func SecretEqual(presented, configured string) bool {
	if configured == "" || presented == "" {
		return false
	}
	return hmac.Equal([]byte(presented), []byte(configured))
}
