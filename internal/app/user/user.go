// Package user defines the user-account record, its password and token
// capabilities, and the persistence layer behind it.
package user

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"worko/internal/pkg/auth/jwt"
)

// User is a single user-account record. The password hash is excluded from
// serialization so it can never leak into a response body.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	City         string    `json:"city"`
	ZipCode      string    `json:"zipCode"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword reports whether plain matches the stored hash.
func (u *User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// SignedToken issues a session token carrying this user's identifier.
func (u *User) SignedToken(secret string) (string, error) {
	payload := &jwt.Payload{ID: u.ID.String()}
	return jwt.GenerateToken(payload, secret, jwt.SessionExpiration)
}
