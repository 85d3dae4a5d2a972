package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sign mints a well-formed HS256 token carrying the given subject and
// expiry. The services never check the signature, so the secret only
// matters to whoever wants to verify the token elsewhere; tests and the
// tokenctl tool use this to produce inputs for Decode/Validate.
func Sign(secret, sub string, exp time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    Issuer,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
