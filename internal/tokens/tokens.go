// Package tokens signs and verifies the bearer tokens issued at login. The
// claims mirror the server-side session exactly; expiry is enforced by
// signature verification, never by trusting the client.
package tokens

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/secureshop/backend/internal/models"
)

// TTL matches the session lifetime.
const TTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type AccessClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func Sign(p models.Principal, secret []byte, expiresAt time.Time) (string, error) {
	claims := AccessClaims{
		Username: p.Username,
		Role:     p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(p.ID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func Parse(tokenStr string, secret []byte) (models.Principal, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return models.Principal{}, ErrInvalidToken
	}
	if !tkn.Valid {
		return models.Principal{}, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return models.Principal{}, ErrInvalidToken
	}

	return models.Principal{
		ID:       uint(id),
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
