// Package service provides business logic for authentication, token
// handling and task management, delegating persistence to repository
// interfaces.
package service

import (
	"errors"
	"time"

	"github.com/andreluizn/tasktrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered JWT claims plus the asserted user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Tokens are stateless: nothing is persisted server-side, so a leaked
// token stays valid until its natural expiry.
type TokenService struct {
	// secret is the process-wide HMAC signing key.
	secret []byte
	// ttl is the validity window stamped into every issued token.
	ttl time.Duration
}

// NewTokenService constructs a TokenService with the given signing secret
// and token time to live.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed HS256 token asserting userID, expiring after the
// configured TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the user ID it
// asserts. Returns common.ErrTokenExpired for tokens past their expiry and
// common.ErrTokenMalformed for anything else that fails validation.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenMalformed
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrTokenMalformed
	}

	return claims.UserID, nil
}
