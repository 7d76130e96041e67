package usecase

import (
	"context"
)

// ProfileUpdate is a partial profile edit. A nil field is left unchanged.
type ProfileUpdate struct {
	Name  *string
	Email *string
	Image *string
}

// CustomerProfile is the customer as shown in the app.
type CustomerProfile struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Mobile string  `json:"mobile"`
	Image  *string `json:"image"`
	Active bool    `json:"active"`
}

// CustomerUsecase defines profile operations of the signed-in customer.
type CustomerUsecase interface {
	GetProfile(ctx context.Context, customerID int64) (*CustomerProfile, error)
	EditProfile(ctx context.Context, customerID int64, update ProfileUpdate) (*CustomerProfile, error)
	UpdatePushToken(ctx context.Context, customerID int64, token string) error
}
