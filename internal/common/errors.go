// Package common defines shared constants and sentinel errors used across
// client and server layers of KOACH. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Password hashing failed inside the algorithm (e.g. input too long).
	ErrHashingFailure = errors.New("hashing failure")

	// Token errors. Malformed covers parse failures and bad signatures.
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")

	// Gate errors, as seen by the HTTP client.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)
