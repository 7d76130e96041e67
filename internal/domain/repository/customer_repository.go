// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"quickeats/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when no non-deleted customer matches.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when the email or mobile is already registered.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// CreateCustomer persists a new customer and fills in its generated fields.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by ID, including soft-deleted ones.
	FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindCustomerByMobile retrieves a customer by normalized mobile number.
	FindCustomerByMobile(ctx context.Context, mobile string) (*entity.Customer, error)

	// ExistsByEmailOrMobile reports whether either value is already taken.
	ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error)

	// EmailTakenByOther reports whether email belongs to a customer other than id.
	EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error)

	// UpdateProfile saves name, email and image of the customer.
	UpdateProfile(ctx context.Context, customer *entity.Customer) error

	// UpdateFCMToken replaces the customer's push token.
	UpdateFCMToken(ctx context.Context, id int64, token string) error
}
