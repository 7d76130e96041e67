package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the profile of a non-deleted customer.
func (srv *customerService) GetProfile(ctx context.Context, customerID int64) (*usecase.CustomerProfile, error) {
	customer, err := srv.findActive(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return toCustomerProfile(customer), nil
}

// EditProfile applies the fields present in update.
func (srv *customerService) EditProfile(ctx context.Context, customerID int64, update usecase.ProfileUpdate) (*usecase.CustomerProfile, error) {
	if err := validateProfileUpdate(update); err != nil {
		return nil, err
	}

	customer, err := srv.findActive(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		customer.Name = strings.TrimSpace(*update.Name)
	}
	if update.Image != nil {
		image := strings.TrimSpace(*update.Image)
		customer.Image = &image
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email != customer.Email {
			taken, err := srv.customerRepo.EmailTakenByOther(ctx, email, customer.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to check email ownership")
			}
			if taken {
				return nil, domainerrors.ErrCustomerAlreadyExists
			}
		}
		customer.Email = email
	}

	if err := srv.customerRepo.UpdateProfile(ctx, customer); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateCustomer):
			return nil, domainerrors.ErrCustomerAlreadyExists
		case errors.Is(err, repository.ErrCustomerNotFound):
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Customer profile updated", slog.Int64("customerID", customer.ID))

	return toCustomerProfile(customer), nil
}

// UpdatePushToken stores the device token used to notify the customer.
func (srv *customerService) UpdatePushToken(ctx context.Context, customerID int64, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: "fcm_token", Message: "fcm_token is required"})
	}

	if _, err := srv.findActive(ctx, customerID); err != nil {
		return err
	}

	if err := srv.customerRepo.UpdateFCMToken(ctx, customerID, token); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to update push token")
	}

	return nil
}

func (srv *customerService) findActive(ctx context.Context, customerID int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, customerID)
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

// validateProfileUpdate rejects an update with no fields or with present but blank fields.
func validateProfileUpdate(update usecase.ProfileUpdate) error {
	if update.Name == nil && update.Email == nil && update.Image == nil {
		return domainerrors.ErrEmptyUpdate
	}

	var fields []domainerrors.FieldError
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"name", update.Name},
		{"email", update.Email},
		{"image", update.Image},
	} {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			fields = append(fields, domainerrors.FieldError{Field: f.name, Message: f.name + " must not be empty"})
		}
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

func toCustomerProfile(customer *entity.Customer) *usecase.CustomerProfile {
	return &usecase.CustomerProfile{
		ID:     customer.ID,
		Name:   customer.Name,
		Email:  customer.Email,
		Mobile: customer.Mobile,
		Image:  customer.Image,
		Active: customer.Active,
	}
}
