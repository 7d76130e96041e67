package impl

import (
	"io"
	"log/slog"
	"time"

	"quickeats/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			ExpiresIn:     24 * time.Hour,
			RefreshWindow: 3 * time.Minute,
		},
		OTP: &config.OTPConfig{
			TTL:            2 * time.Minute,
			ResendCooldown: 30 * time.Second,
		},
		Settlement: &config.SettlementConfig{
			PlatformCommissionRate: "0.18",
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
