package validator

import (
	"testing"

	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLine struct {
	ID       int64 `json:"id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"gte=1"`
}

type testRequest struct {
	ShopID  int64      `json:"shop_id" validate:"required"`
	Type    string     `json:"type" validate:"oneof=COD CARD"`
	Email   string     `json:"email,omitempty" validate:"omitempty,email"`
	Product []testLine `json:"product" validate:"min=1,dive"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&testRequest{
		ShopID:  1,
		Type:    "COD",
		Product: []testLine{{ID: 2, Quantity: 1}},
	})

	assert.NoError(t, err)
}

func TestValidate_AggregatesAllFields(t *testing.T) {
	v := New()

	err := v.Validate(&testRequest{
		Type:    "CASH",
		Email:   "not-an-email",
		Product: []testLine{{ID: 0, Quantity: 0}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	names := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		names = append(names, f.Field)
	}
	assert.Equal(t, []string{"shop_id", "type", "email", "product[0].id", "product[0].quantity"}, names)
	assert.Equal(t, "shop_id is required", validationErr.Fields()[0].Message)
	assert.Equal(t, "type must be one of COD, CARD", validationErr.Fields()[1].Message)
}

func TestValidate_EmptyList(t *testing.T) {
	v := New()

	err := v.Validate(&testRequest{ShopID: 1, Type: "CARD", Product: []testLine{}})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "product", validationErr.Fields()[0].Field)
}

func TestValidate_DecimalBounds(t *testing.T) {
	type tipRequest struct {
		Tip *decimal.Decimal `json:"tip_amount" validate:"omitempty,gte=0"`
	}
	v := New()

	negative := decimal.RequireFromString("-0.01")
	err := v.Validate(&tipRequest{Tip: &negative})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "tip_amount must be at least 0", validationErr.Fields()[0].Message)

	positive := decimal.RequireFromString("150.00")
	assert.NoError(t, v.Validate(&tipRequest{Tip: &positive}))
	assert.NoError(t, v.Validate(&tipRequest{}))
}
