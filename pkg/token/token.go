// Package token decodes and validates the bearer tokens the bookstore
// services trust. Tokens are standard three-segment JWTs, but only the
// payload segment is ever inspected: the platform's trust model accepts
// claims without verifying the signature (see DESIGN.md).
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Issuer is the only issuer the services accept.
const Issuer = "cmu.edu"

// ValidSubjects is the fixed allow-list of subjects a token may carry.
var ValidSubjects = []string{"starlord", "gamora", "drax", "rocket", "groot"}

// ErrMalformed marks a token whose payload cannot be decoded. Every decode
// failure collapses to this one error; callers are not told whether the
// structure, the base64, or the JSON was at fault.
var ErrMalformed = errors.New("malformed token")

// Claims is a decoded token payload.
type Claims map[string]any

// Decode extracts the claims from the payload segment of a bearer token.
// It returns ErrMalformed unless the token has exactly three dot-separated
// segments and the middle one is base64url-encoded JSON object text.
func Decode(tok string) (Claims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}

	// Tokens in the wild carry unpadded base64url; pad to a multiple of 4.
	payload := parts[1]
	if n := len(payload) % 4; n != 0 {
		payload += strings.Repeat("=", 4-n)
	}

	raw, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrMalformed
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, ErrMalformed
	}

	return claims, nil
}

// Validate checks the decoded claims against the platform rules. Checks run
// in a fixed order and the first failure wins; the returned string is either
// the failure reason or "Valid token".
func Validate(claims Claims, now time.Time) (bool, string) {
	if len(claims) == 0 {
		return false, "Invalid token format"
	}

	sub, ok := claims["sub"].(string)
	if !ok || !validSubject(sub) {
		return false, "Invalid subject in token"
	}

	exp, ok := numericClaim(claims["exp"])
	if !ok {
		return false, "Missing or invalid expiration in token"
	}
	// A token expiring exactly now is already expired.
	if exp <= float64(now.Unix()) {
		return false, "Token has expired"
	}

	if iss, ok := claims["iss"].(string); !ok || iss != Issuer {
		return false, "Invalid issuer in token"
	}

	return true, "Valid token"
}

func validSubject(sub string) bool {
	for _, s := range ValidSubjects {
		if s == sub {
			return true
		}
	}
	return false
}

// numericClaim accepts the numeric types a decoded JSON claim can take.
// encoding/json delivers float64; json.Number shows up when callers decode
// with UseNumber.
func numericClaim(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
