package auth

import (
	"testing"
	"time"

	"quickeats/config"
	"quickeats/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	cfg := &config.Config{JWT: &config.JWTConfig{ExpiresIn: 24 * time.Hour}}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return now }

	return impl
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	issued := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, issued)

	token, err := svc.GenerateToken("94771234567")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "94771234567", claims.Mobile)
	assert.True(t, claims.IssuedAt.Equal(issued))
	assert.True(t, claims.ExpiresAt.Equal(issued.Add(24*time.Hour)))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issued := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, issued)

	token, err := svc.GenerateToken("94771234567")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(25 * time.Hour) }

	claims, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, now)

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Mobile:           "94771234567",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	noMobile, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{Mobile: "94771234567"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		Mobile:           "94771234567",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":       "clearly-not-a-jwt-token-format",
		"wrong secret":  otherKey,
		"missing claim": noMobile,
		"no expiry":     noExpiry,
		"none alg":      noneAlg,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, service.ErrTokenInvalid)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{ExpiresIn: time.Hour}})
	assert.Error(t, err)
}
