// internal/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// SetSecret sets the JWT secret key (e.g., from config)
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// Claims is the dashboard token payload: one token per tradie tenant.
type Claims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed dashboard JWT for the given tenant
func GenerateToken(tenantID string) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("JWT secret not set")
	}

	claims := Claims{
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken parses and verifies a JWT string
func ValidateToken(tokenStr string) (*Claims, error) {
	if len(jwtSecret) == 0 {
		return nil, errors.New("JWT secret not set")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}
