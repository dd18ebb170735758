// Package jwt signs and verifies the session tokens transported in the
// "token" cookie.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// SessionExpiration is the lifetime of an issued session token. Logout
	// only clears the client cookie, so a leaked token stays verifiable
	// until this duration elapses.
	SessionExpiration = 24 * time.Hour

	// TokenIssuer identifies tokens minted by this service.
	TokenIssuer = "worko-user-service"
)

// GenerateToken signs payload with secretKey (HS256) and returns the compact
// token string.
func GenerateToken(payload *Payload, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(duration).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken verifies tokenString against secretKey and returns its claims.
// Every verification failure, including an unexpected signing method, an
// invalid signature, and an expired token, comes back as an error.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}
