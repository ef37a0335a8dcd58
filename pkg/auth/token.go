package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// DefaultTokenExpiry is applied when the configuration does not say.
const DefaultTokenExpiry = 7 * 24 * time.Hour

type TokenIssuer interface {
	// Issue signs a session token for the given user id.
	Issue(userId string) (string, error)
}

type TokenVerifier interface {
	// Verify checks a session token and returns the user id it was
	// issued for.
	//
	// Returns ErrInvalidToken when the token is malformed, forged or
	// expired.
	Verify(token string) (string, error)
}

// hs256 signs and verifies session tokens with a shared secret.
type hs256 struct {
	secret []byte
	expiry time.Duration
}

var (
	_ TokenIssuer   = &hs256{}
	_ TokenVerifier = &hs256{}
)

func NewHS256(secret []byte, expiry time.Duration) *hs256 {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &hs256{secret: secret, expiry: expiry}
}

func (h *hs256) Issue(userId string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userId,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

func (h *hs256) Verify(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		token, &claims,
		func(t *jwt.Token) (any, error) { return h.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
