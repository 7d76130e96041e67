// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"quickeats/config"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the JWT payload of a customer session.
type sessionClaims struct {
	Mobile string `json:"mobile"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // HS256 signing key.
	ttl    time.Duration // Lifetime of a freshly minted token.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := time.Duration(0)
	if cfg.JWT != nil {
		ttl = cfg.JWT.ExpiresIn
	}
	if ttl <= 0 {
		return nil, errors.New("jwt expiresIn must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken mints a session token carrying the customer's mobile.
func (s *jwtService) GenerateToken(mobile string) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Mobile: mobile,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks signature and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
	if claims.Mobile == "" {
		return nil, errors.Wrap(service.ErrTokenInvalid, "token has no mobile claim")
	}

	result := &service.TokenClaims{
		Mobile:    claims.Mobile,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	return result, nil
}
