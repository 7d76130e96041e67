// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quickeats/internal/domain/entity"
)

// SignUpInput defines the data required to register a customer.
type SignUpInput struct {
	Email  string
	Name   string
	Mobile string // Any accepted format; normalized before storage.
}

// AuthUsecase defines OTP sign-in and session token operations.
type AuthUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*entity.Customer, error)

	// RequestOTP texts a fresh sign-in code to a registered mobile.
	RequestOTP(ctx context.Context, mobile string) error

	// SignIn exchanges a valid code for a session token.
	SignIn(ctx context.Context, mobile, otp string) (string, error)

	// RefreshToken re-mints a token close to expiry and returns any other
	// valid token unchanged.
	RefreshToken(ctx context.Context, token string) (string, error)

	// VerifyToken returns the mobile a valid token was issued for.
	VerifyToken(ctx context.Context, token string) (string, error)

	// AuthenticateToken verifies token and resolves its active customer.
	AuthenticateToken(ctx context.Context, token string) (*entity.Customer, error)

	// ResolveCustomer loads a customer that may sign in.
	ResolveCustomer(ctx context.Context, id int64) (*entity.Customer, error)
}
