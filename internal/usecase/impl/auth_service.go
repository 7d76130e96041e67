// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"quickeats/config"
	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/fx"
)

const (
	otpDigits      = 6
	otpMessageText = "Your OTP is: "
)

var otpUpperBound = big.NewInt(1_000_000)

// authService implements the AuthUsecase interface.
type authService struct {
	customerRepo  repository.CustomerRepository
	otpRepo       repository.OTPRepository
	tokenService  service.TokenService
	hasher        service.CodeHasher
	smsService    service.SMSService
	otpTTL        time.Duration
	refreshWindow time.Duration
	throttle      *ttlcache.Cache[string, struct{}]
	now           func() time.Time
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Lc           fx.Lifecycle `optional:"true"`
	CustomerRepo repository.CustomerRepository
	OTPRepo      repository.OTPRepository
	TokenService service.TokenService
	Hasher       service.CodeHasher
	SMSService   service.SMSService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
// The resend throttle evicts expired entries in the background while the app runs.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := newAuthService(params)

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go srv.throttle.Start()

				return nil
			},
			OnStop: func(context.Context) error {
				srv.throttle.Stop()

				return nil
			},
		})
	}

	return srv
}

func newAuthService(params AuthServiceParams) *authService {
	cooldown := params.Config.OTP.ResendCooldown

	return &authService{
		customerRepo:  params.CustomerRepo,
		otpRepo:       params.OTPRepo,
		tokenService:  params.TokenService,
		hasher:        params.Hasher,
		smsService:    params.SMSService,
		otpTTL:        params.Config.OTP.TTL,
		refreshWindow: params.Config.JWT.RefreshWindow,
		throttle: ttlcache.New(
			ttlcache.WithTTL[string, struct{}](cooldown),
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
		now:    time.Now,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new active customer.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Customer, error) {
	mobile, ok := entity.NormalizeMobile(input.Mobile)
	if !ok {
		return nil, domainerrors.ErrInvalidMobile
	}

	email := strings.TrimSpace(input.Email)
	exists, err := srv.customerRepo.ExistsByEmailOrMobile(ctx, email, mobile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing customer")
	}
	if exists {
		return nil, domainerrors.ErrCustomerAlreadyExists
	}

	customer := &entity.Customer{
		Name:   strings.TrimSpace(input.Name),
		Email:  email,
		Mobile: mobile,
		Active: true,
	}
	if err := srv.customerRepo.CreateCustomer(ctx, customer); err != nil {
		// Lost a race with a concurrent sign-up.
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return nil, domainerrors.ErrCustomerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Info("Customer signed up", slog.Int64("customerID", customer.ID))

	return customer, nil
}

// RequestOTP issues a sign-in code and texts it to the customer.
func (srv *authService) RequestOTP(ctx context.Context, rawMobile string) error {
	mobile, ok := entity.NormalizeMobile(rawMobile)
	if !ok {
		return domainerrors.ErrInvalidMobile
	}

	customer, err := srv.findSignInCustomer(ctx, mobile)
	if err != nil {
		return err
	}

	if _, throttled := srv.throttle.GetOrSet(mobile, struct{}{}); throttled {
		return domainerrors.ErrOTPThrottled
	}

	if err := srv.issueOTP(ctx, customer); err != nil {
		// Let the customer retry right away when nothing was sent.
		srv.throttle.Delete(mobile)

		return err
	}

	return nil
}

func (srv *authService) issueOTP(ctx context.Context, customer *entity.Customer) error {
	code, err := generateOTPCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}

	hash, err := srv.hasher.Hash(code)
	if err != nil {
		return errors.Wrap(err, "failed to hash otp")
	}

	now := srv.now()
	otp := &entity.OTP{
		Mobile:    customer.Mobile,
		Email:     customer.Email,
		CodeHash:  hash,
		ExpiresAt: now.Add(srv.otpTTL),
		CreatedAt: now,
	}
	if err := srv.otpRepo.CreateOTP(ctx, otp); err != nil {
		return errors.Wrap(err, "failed to store otp")
	}

	if err := srv.smsService.Send(ctx, customer.Mobile, otpMessageText+code); err != nil {
		srv.log(ctx).Error("Failed to send OTP", slog.Int64("customerID", customer.ID), slog.Any("error", err))

		return domainerrors.ErrOTPDelivery.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("OTP issued", slog.Int64("customerID", customer.ID))

	return nil
}

// SignIn exchanges a valid code for a session token. Used codes are discarded.
func (srv *authService) SignIn(ctx context.Context, rawMobile, code string) (string, error) {
	mobile, ok := entity.NormalizeMobile(rawMobile)
	if !ok {
		return "", domainerrors.ErrInvalidMobile
	}

	otps, err := srv.otpRepo.FindActiveOTPs(ctx, mobile, srv.now())
	if err != nil {
		return "", errors.Wrap(err, "failed to find otp")
	}

	matched := false
	for _, otp := range otps {
		if srv.hasher.Check(code, otp.CodeHash) {
			matched = true

			break
		}
	}
	if !matched {
		srv.log(ctx).Warn("Sign-in with invalid OTP", slog.Int("activeCodes", len(otps)))

		return "", domainerrors.ErrInvalidOTP
	}

	if err := srv.otpRepo.DeleteOTPsByMobile(ctx, mobile); err != nil {
		return "", errors.Wrap(err, "failed to delete used otp")
	}

	customer, err := srv.findSignInCustomer(ctx, mobile)
	if err != nil {
		return "", err
	}

	token, err := srv.tokenService.GenerateToken(customer.Mobile)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Customer signed in", slog.Int64("customerID", customer.ID))

	return token, nil
}

// RefreshToken re-mints a token within the refresh window of its expiry.
func (srv *authService) RefreshToken(ctx context.Context, token string) (string, error) {
	claims, err := srv.validate(token)
	if err != nil {
		return "", err
	}

	if _, err := srv.findSignInCustomer(ctx, claims.Mobile); err != nil {
		return "", err
	}

	remaining := claims.ExpiresAt.Sub(srv.now())
	if remaining <= 0 {
		return "", domainerrors.ErrTokenExpired
	}
	if remaining > srv.refreshWindow {
		return token, nil
	}

	fresh, err := srv.tokenService.GenerateToken(claims.Mobile)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return fresh, nil
}

// VerifyToken returns the mobile a valid token was issued for.
func (srv *authService) VerifyToken(_ context.Context, token string) (string, error) {
	claims, err := srv.validate(token)
	if err != nil {
		return "", err
	}

	return claims.Mobile, nil
}

// AuthenticateToken verifies token and loads the customer it belongs to.
func (srv *authService) AuthenticateToken(ctx context.Context, token string) (*entity.Customer, error) {
	mobile, err := srv.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return srv.findSignInCustomer(ctx, mobile)
}

// ResolveCustomer loads a customer that has not been deleted.
func (srv *authService) ResolveCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, id)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrCustomerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}
	if !customer.CanSignIn() {
		return nil, domainerrors.ErrCustomerNotFound
	}

	return customer, nil
}

func (srv *authService) validate(token string) (*service.TokenClaims, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return nil, domainerrors.ErrTokenExpired
	case err != nil:
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	return claims, nil
}

// findSignInCustomer treats unknown and deleted customers alike as unauthorized.
func (srv *authService) findSignInCustomer(ctx context.Context, mobile string) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByMobile(ctx, mobile)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}
	if !customer.CanSignIn() {
		return nil, domainerrors.ErrUnauthorized
	}

	return customer, nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpUpperBound)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
