package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var ErrNoExpiryClaim = errors.New("token carries no exp claim")

// TokenExpiry peeks at the access token's exp claim without verifying the
// signature. The server stays the authority on token validity; this is for
// diagnostics only.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse access token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, ErrNoExpiryClaim
	}
	return time.Unix(int64(exp), 0), nil
}
