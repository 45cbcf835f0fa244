package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the HttpOnly cookie carrying the wrapped session secret.
const CookieName = "mealshare_session"

type cookieClaims struct {
	Secret string `json:"sess"`
	jwt.RegisteredClaims
}

// IssueCookieToken wraps the upstream session secret in a signed HS256
// token. The expiry mirrors the upstream session expiry; the server itself
// persists nothing.
func IssueCookieToken(signingKey []byte, userID, secret string, expiresAt time.Time) (string, error) {
	claims := cookieClaims{
		Secret: secret,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}

// ParseCookieToken extracts the wrapped session secret. Any failure
// (expiry, bad signature, garbage) reads as "no session"; the auth service
// remains the authority on whether the session is actually alive.
func ParseCookieToken(signingKey []byte, token string) (secret string, ok bool) {
	claims := &cookieClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, hmac := t.Method.(*jwt.SigningMethodHMAC); !hmac {
			return nil, jwt.ErrSignatureInvalid
		}
		return signingKey, nil
	})
	if err != nil || !parsed.Valid || claims.Secret == "" {
		return "", false
	}
	return claims.Secret, true
}
