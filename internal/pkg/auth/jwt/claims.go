package jwt

import "github.com/golang-jwt/jwt"

// Payload is the claim set carried by a session token.
type Payload struct {
	// StandardClaims provides the expiry, issued-at, and issuer fields
	// the verification step checks.
	jwt.StandardClaims

	// ID is the identifier of the user the token authenticates.
	ID string `json:"id"`
}
