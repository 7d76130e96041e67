package service

import (
	"time"

	"github.com/pkg/errors"
)

// Token validation failures.
var (
	// ErrTokenExpired is returned for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for a malformed or wrongly signed token.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenClaims are the verified contents of a session token.
type TokenClaims struct {
	Mobile    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating session JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken mints a session token for a normalized mobile number.
	GenerateToken(mobile string) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(token string) (*TokenClaims, error)
}
