package domain

import "errors"

// ErrInvalidToken covers malformed, badly signed, and expired tokens alike.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the identity carried by a bearer token. Tokens are
// ephemeral and never persisted; a leaked token stays valid until expiry.
type TokenClaims struct {
	UserID   string
	Username string
}
