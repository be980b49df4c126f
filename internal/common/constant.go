// Package common contains shared constants, sentinel errors and helpers used
// by both the Booth client and the reference backend.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token inside the Authorization header.
	BearerScheme = "Bearer"

	// UserIDClaim is the JWT claim holding the numeric account id.
	UserIDClaim = "user_id"
)
