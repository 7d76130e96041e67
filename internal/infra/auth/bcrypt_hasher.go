package auth

import (
	"quickeats/config"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the CodeHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.CodeHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.OTP != nil && cfg.OTP.BcryptCost >= bcrypt.MinCost && cfg.OTP.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.OTP.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash of code. bcrypt handles salt generation.
func (h *bcryptHasher) Hash(code string) (string, error) {
	if code == "" {
		return "", errors.New("code must not be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash code")
	}

	return string(bytes), nil
}

// Check compares a plaintext code with a bcrypt hash.
func (h *bcryptHasher) Check(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
