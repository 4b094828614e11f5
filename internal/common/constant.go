// Package common contains shared constants and sentinel errors used across
// KOACH components.
package common

const (
	// AuthorizationHeader is the only request header the server reads a
	// session token from.
	AuthorizationHeader = "Authorization"

	// BearerPrefix must precede the token verbatim, including the single space.
	BearerPrefix = "Bearer "
)
