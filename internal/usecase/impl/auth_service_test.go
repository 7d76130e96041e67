package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
	mockRepo "quickeats/internal/mocks/repository"
	mockSvc "quickeats/internal/mocks/service"
	"quickeats/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMobile = "94771234567"

var otpMessagePattern = regexp.MustCompile(`^Your OTP is: \d{6}$`)

type authServiceMocks struct {
	customerRepo *mockRepo.MockCustomerRepository
	otpRepo      *mockRepo.MockOTPRepository
	tokenService *mockSvc.MockTokenService
	hasher       *mockSvc.MockCodeHasher
	sms          *mockSvc.MockSMSService
}

func createTestAuthService(t *testing.T, now time.Time) (*authService, *authServiceMocks) {
	t.Helper()

	mocks := &authServiceMocks{
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		otpRepo:      mockRepo.NewMockOTPRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
		hasher:       mockSvc.NewMockCodeHasher(t),
		sms:          mockSvc.NewMockSMSService(t),
	}

	srv := newAuthService(AuthServiceParams{
		CustomerRepo: mocks.customerRepo,
		OTPRepo:      mocks.otpRepo,
		TokenService: mocks.tokenService,
		Hasher:       mocks.hasher,
		SMSService:   mocks.sms,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	srv.now = func() time.Time { return now }

	return srv, mocks
}

func activeCustomer() *entity.Customer {
	return &entity.Customer{ID: 7, Name: "Nimal", Email: "nimal@example.com", Mobile: testMobile, Active: true}
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active customer with a normalized mobile", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, time.Now())

		mocks.customerRepo.EXPECT().ExistsByEmailOrMobile(ctx, "nimal@example.com", testMobile).Return(false, nil)
		mocks.customerRepo.EXPECT().CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
			Run(func(_ context.Context, customer *entity.Customer) { customer.ID = 11 }).
			Return(nil)

		customer, err := srv.SignUp(ctx, usecase.SignUpInput{Email: " nimal@example.com ", Name: "Nimal", Mobile: "077 123 4567"})

		require.NoError(t, err)
		assert.Equal(t, int64(11), customer.ID)
		assert.Equal(t, testMobile, customer.Mobile)
		assert.True(t, customer.Active)
		assert.False(t, customer.Deleted)
	})

	t.Run("rejects a taken email or mobile", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, time.Now())

		mocks.customerRepo.EXPECT().ExistsByEmailOrMobile(ctx, "nimal@example.com", testMobile).Return(true, nil)

		_, err := srv.SignUp(ctx, usecase.SignUpInput{Email: "nimal@example.com", Name: "Nimal", Mobile: "+94771234567"})

		assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
	})

	t.Run("maps a unique violation on insert", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, time.Now())

		mocks.customerRepo.EXPECT().ExistsByEmailOrMobile(ctx, "nimal@example.com", testMobile).Return(false, nil)
		mocks.customerRepo.EXPECT().CreateCustomer(ctx, mock.Anything).Return(repository.ErrDuplicateCustomer)

		_, err := srv.SignUp(ctx, usecase.SignUpInput{Email: "nimal@example.com", Name: "Nimal", Mobile: "0771234567"})

		assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
	})

	t.Run("rejects an invalid mobile", func(t *testing.T) {
		srv, _ := createTestAuthService(t, time.Now())

		_, err := srv.SignUp(ctx, usecase.SignUpInput{Email: "nimal@example.com", Name: "Nimal", Mobile: "12345"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidMobile)
	})
}

func TestAuthService_RequestOTP(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("stores a hashed code and texts it", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(activeCustomer(), nil)
		mocks.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil)
		mocks.otpRepo.EXPECT().CreateOTP(ctx, mock.AnythingOfType("*entity.OTP")).
			Run(func(_ context.Context, otp *entity.OTP) {
				assert.Equal(t, testMobile, otp.Mobile)
				assert.Equal(t, "nimal@example.com", otp.Email)
				assert.Equal(t, "hashed", otp.CodeHash)
				assert.Equal(t, now.Add(2*time.Minute), otp.ExpiresAt)
			}).
			Return(nil)
		mocks.sms.EXPECT().Send(ctx, testMobile, mock.MatchedBy(otpMessagePattern.MatchString)).Return(nil)

		require.NoError(t, srv.RequestOTP(ctx, "0771234567"))
	})

	t.Run("throttles a second request inside the cooldown", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(activeCustomer(), nil).Times(2)
		mocks.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
		mocks.otpRepo.EXPECT().CreateOTP(ctx, mock.Anything).Return(nil).Once()
		mocks.sms.EXPECT().Send(ctx, testMobile, mock.Anything).Return(nil).Once()

		require.NoError(t, srv.RequestOTP(ctx, "0771234567"))
		err := srv.RequestOTP(ctx, "+94771234567")

		assert.ErrorIs(t, err, domainerrors.ErrOTPThrottled)
	})

	t.Run("failed delivery does not start the cooldown", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(activeCustomer(), nil).Times(2)
		mocks.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Times(2)
		mocks.otpRepo.EXPECT().CreateOTP(ctx, mock.Anything).Return(nil).Times(2)
		mocks.sms.EXPECT().Send(ctx, testMobile, mock.Anything).Return(errors.New("gateway down")).Once()
		mocks.sms.EXPECT().Send(ctx, testMobile, mock.Anything).Return(nil).Once()

		err := srv.RequestOTP(ctx, testMobile)
		assert.ErrorIs(t, err, domainerrors.ErrOTPDelivery)

		require.NoError(t, srv.RequestOTP(ctx, testMobile))
	})

	t.Run("unknown or deleted customers are unauthorized", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		deleted := activeCustomer()
		deleted.Deleted = true
		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(nil, repository.ErrCustomerNotFound).Once()
		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(deleted, nil).Once()

		assert.ErrorIs(t, srv.RequestOTP(ctx, testMobile), domainerrors.ErrUnauthorized)
		assert.ErrorIs(t, srv.RequestOTP(ctx, testMobile), domainerrors.ErrUnauthorized)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	otps := []*entity.OTP{
		{ID: 2, Mobile: testMobile, CodeHash: "newest", ExpiresAt: now.Add(time.Minute)},
		{ID: 1, Mobile: testMobile, CodeHash: "older", ExpiresAt: now.Add(30 * time.Second)},
	}

	t.Run("valid code returns a token and discards codes", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		mocks.otpRepo.EXPECT().FindActiveOTPs(ctx, testMobile, now).Return(otps, nil)
		mocks.hasher.EXPECT().Check("123456", "newest").Return(false)
		mocks.hasher.EXPECT().Check("123456", "older").Return(true)
		mocks.otpRepo.EXPECT().DeleteOTPsByMobile(ctx, testMobile).Return(nil)
		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(activeCustomer(), nil)
		mocks.tokenService.EXPECT().GenerateToken(testMobile).Return("signed-token", nil)

		token, err := srv.SignIn(ctx, "0771234567", "123456")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		mocks.otpRepo.EXPECT().FindActiveOTPs(ctx, testMobile, now).Return(otps, nil)
		mocks.hasher.EXPECT().Check("000000", mock.Anything).Return(false)

		_, err := srv.SignIn(ctx, testMobile, "000000")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	})

	t.Run("no active code is rejected", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		mocks.otpRepo.EXPECT().FindActiveOTPs(ctx, testMobile, now).Return(nil, nil)

		_, err := srv.SignIn(ctx, testMobile, "123456")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	claimsExpiringIn := func(d time.Duration) *service.TokenClaims {
		return &service.TokenClaims{Mobile: testMobile, IssuedAt: now.Add(-time.Hour), ExpiresAt: now.Add(d)}
	}

	t.Run("token far from expiry is returned unchanged", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		mocks.tokenService.EXPECT().ValidateToken("old").Return(claimsExpiringIn(10*time.Minute), nil)
		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(activeCustomer(), nil)

		token, err := srv.RefreshToken(ctx, "old")

		require.NoError(t, err)
		assert.Equal(t, "old", token)
	})

	t.Run("token inside the refresh window is re-minted", func(t *testing.T) {
		for _, remaining := range []time.Duration{2 * time.Minute, 3 * time.Minute, time.Second} {
			srv, mocks := createTestAuthService(t, now)

			mocks.tokenService.EXPECT().ValidateToken("old").Return(claimsExpiringIn(remaining), nil)
			mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(activeCustomer(), nil)
			mocks.tokenService.EXPECT().GenerateToken(testMobile).Return("fresh", nil)

			token, err := srv.RefreshToken(ctx, "old")

			require.NoError(t, err)
			assert.Equal(t, "fresh", token, "remaining %s", remaining)
		}
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		mocks.tokenService.EXPECT().ValidateToken("old").Return(nil, service.ErrTokenExpired)

		_, err := srv.RefreshToken(ctx, "old")

		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("deleted customer cannot refresh", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, now)

		deleted := activeCustomer()
		deleted.Deleted = true
		mocks.tokenService.EXPECT().ValidateToken("old").Return(claimsExpiringIn(time.Minute), nil)
		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(deleted, nil)

		_, err := srv.RefreshToken(ctx, "old")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthService_AuthenticateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the token's customer", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, time.Now())

		mocks.tokenService.EXPECT().ValidateToken("good").Return(&service.TokenClaims{Mobile: testMobile}, nil)
		mocks.customerRepo.EXPECT().FindCustomerByMobile(ctx, testMobile).Return(activeCustomer(), nil)

		customer, err := srv.AuthenticateToken(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, int64(7), customer.ID)
	})

	t.Run("malformed token is unauthorized", func(t *testing.T) {
		srv, mocks := createTestAuthService(t, time.Now())

		mocks.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.Wrap(service.ErrTokenInvalid, "signature"))

		_, err := srv.AuthenticateToken(ctx, "bad")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthService_ResolveCustomer(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestAuthService(t, time.Now())

	deleted := activeCustomer()
	deleted.Deleted = true
	mocks.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(activeCustomer(), nil).Once()
	mocks.customerRepo.EXPECT().FindCustomerByID(ctx, int64(8)).Return(deleted, nil).Once()
	mocks.customerRepo.EXPECT().FindCustomerByID(ctx, int64(9)).Return(nil, repository.ErrCustomerNotFound).Once()

	customer, err := srv.ResolveCustomer(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, testMobile, customer.Mobile)

	_, err = srv.ResolveCustomer(ctx, 8)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)

	_, err = srv.ResolveCustomer(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestGenerateOTPCode(t *testing.T) {
	for range 50 {
		code, err := generateOTPCode()
		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}
