package impl

import (
	"context"
	"testing"

	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	mockRepo "quickeats/internal/mocks/repository"
	"quickeats/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCustomerService(t *testing.T) (usecase.CustomerUsecase, *mockRepo.MockCustomerRepository) {
	t.Helper()

	customerRepo := mockRepo.NewMockCustomerRepository(t)

	return NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		Logger:       newDiscardLogger(),
	}), customerRepo
}

func TestCustomerService_GetProfile(t *testing.T) {
	ctx := context.Background()
	srv, customerRepo := createTestCustomerService(t)

	customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(activeCustomer(), nil)

	profile, err := srv.GetProfile(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, &usecase.CustomerProfile{
		ID:     7,
		Name:   "Nimal",
		Email:  "nimal@example.com",
		Mobile: testMobile,
		Active: true,
	}, profile)
}

func TestCustomerService_EditProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("absent fields keep their values", func(t *testing.T) {
		srv, customerRepo := createTestCustomerService(t)

		customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(activeCustomer(), nil)
		customerRepo.EXPECT().UpdateProfile(ctx, mock.AnythingOfType("*entity.Customer")).
			Run(func(_ context.Context, customer *entity.Customer) {
				assert.Equal(t, "Nimal Perera", customer.Name)
				assert.Equal(t, "nimal@example.com", customer.Email)
				assert.Nil(t, customer.Image)
			}).
			Return(nil)

		profile, err := srv.EditProfile(ctx, 7, usecase.ProfileUpdate{Name: ptr(" Nimal Perera ")})

		require.NoError(t, err)
		assert.Equal(t, "Nimal Perera", profile.Name)
	})

	t.Run("present but empty fields are invalid", func(t *testing.T) {
		srv, _ := createTestCustomerService(t)

		_, err := srv.EditProfile(ctx, 7, usecase.ProfileUpdate{Name: ptr("  "), Image: ptr("")})

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Fields(), 2)
		assert.Equal(t, "name", validationErr.Fields()[0].Field)
		assert.Equal(t, "image", validationErr.Fields()[1].Field)
	})

	t.Run("an update without fields is rejected", func(t *testing.T) {
		srv, _ := createTestCustomerService(t)

		_, err := srv.EditProfile(ctx, 7, usecase.ProfileUpdate{})

		assert.ErrorIs(t, err, domainerrors.ErrEmptyUpdate)
	})

	t.Run("email owned by another customer conflicts", func(t *testing.T) {
		srv, customerRepo := createTestCustomerService(t)

		customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(activeCustomer(), nil)
		customerRepo.EXPECT().EmailTakenByOther(ctx, "kamal@example.com", int64(7)).Return(true, nil)

		_, err := srv.EditProfile(ctx, 7, usecase.ProfileUpdate{Email: ptr("kamal@example.com")})

		assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
	})

	t.Run("unchanged email skips the ownership check", func(t *testing.T) {
		srv, customerRepo := createTestCustomerService(t)

		customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(activeCustomer(), nil)
		customerRepo.EXPECT().UpdateProfile(ctx, mock.Anything).Return(nil)

		profile, err := srv.EditProfile(ctx, 7, usecase.ProfileUpdate{
			Email: ptr("nimal@example.com"),
			Image: ptr("https://cdn.example.com/nimal.png"),
		})

		require.NoError(t, err)
		require.NotNil(t, profile.Image)
		assert.Equal(t, "https://cdn.example.com/nimal.png", *profile.Image)
	})

	t.Run("deleted customer is not found", func(t *testing.T) {
		srv, customerRepo := createTestCustomerService(t)

		deleted := activeCustomer()
		deleted.Deleted = true
		customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(deleted, nil)

		_, err := srv.EditProfile(ctx, 7, usecase.ProfileUpdate{Name: ptr("Nimal")})

		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})
}

func TestCustomerService_UpdatePushToken(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the token", func(t *testing.T) {
		srv, customerRepo := createTestCustomerService(t)

		customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(activeCustomer(), nil)
		customerRepo.EXPECT().UpdateFCMToken(ctx, int64(7), "device-token").Return(nil)

		require.NoError(t, srv.UpdatePushToken(ctx, 7, " device-token "))
	})

	t.Run("blank token is invalid", func(t *testing.T) {
		srv, _ := createTestCustomerService(t)

		err := srv.UpdatePushToken(ctx, 7, " ")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown customer", func(t *testing.T) {
		srv, customerRepo := createTestCustomerService(t)

		customerRepo.EXPECT().FindCustomerByID(ctx, int64(9)).Return(nil, repository.ErrCustomerNotFound)

		assert.ErrorIs(t, srv.UpdatePushToken(ctx, 9, "device-token"), domainerrors.ErrCustomerNotFound)
	})
}
