package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenParser never validates signatures or standard claims. The server
// is the authority on the token; the client only needs the expiry instant
// out of the payload.
var tokenParser = jwt.NewParser()

// IsTokenExpired reports whether token can no longer be used. An absent
// token, an unparsable token, and a token without an exp claim all count
// as expired (fail-closed), as does an exp in the past.
func IsTokenExpired(token string) bool {
	if token == "" {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := tokenParser.ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return exp.Before(time.Now())
}
