package repository

import (
	"context"
	"time"

	"quickeats/internal/domain/entity"
)

// OTPRepository persists one-time sign-in codes.
type OTPRepository interface {
	// CreateOTP stores a hashed code.
	CreateOTP(ctx context.Context, otp *entity.OTP) error

	// FindActiveOTPs lists codes for mobile that have not expired at now, newest first.
	FindActiveOTPs(ctx context.Context, mobile string, now time.Time) ([]*entity.OTP, error)

	// DeleteOTPsByMobile removes every code issued to mobile.
	DeleteOTPsByMobile(ctx context.Context, mobile string) error
}
