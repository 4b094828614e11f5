// Package auth issues and verifies session tokens, hashes passwords and
// carries the authenticated user id through a request context.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/koach/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the lifetime of every session token.
const TokenValidity = time.Hour

// Claims is the token payload: the registered iat/exp pair plus the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenService signs and verifies HS256 session tokens with a single secret
// fixed at construction.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// TokenOption customises a TokenService at construction.
type TokenOption func(*TokenService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService returns a TokenService signing with secret, which must not be empty.
func NewTokenService(secret []byte, opts ...TokenOption) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	s := &TokenService{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Issue returns a signed token for userID that expires TokenValidity after now.
func (s *TokenService) Issue(userID string) (string, error) {
	iat := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(TokenValidity)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature first and the expiry second, and returns the
// user id the token was issued for.
//
// Errors are common.ErrTokenMalformed or common.ErrTokenExpired.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrTokenMalformed, err)
	}

	if claims.UserID == "" {
		return "", fmt.Errorf("%w: no user id", common.ErrTokenMalformed)
	}
	return claims.UserID, nil
}
