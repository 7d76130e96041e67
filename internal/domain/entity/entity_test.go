package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "0771234567", want: "94771234567", ok: true},
		{raw: "771234567", want: "94771234567", ok: true},
		{raw: "94771234567", want: "94771234567", ok: true},
		{raw: "+94771234567", want: "94771234567", ok: true},
		{raw: "+94 77 123 4567", want: "94771234567", ok: true},
		{raw: "0112345678"},
		{raw: "07712345"},
		{raw: "077123456789"},
		{raw: "+1771234567"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeMobile(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewShopRating(t *testing.T) {
	rating := NewShopRating([]*ShopFeedback{{Rating: 5}, {Rating: 3}})
	require.NotNil(t, rating.AverageRating)
	assert.Equal(t, "4.00", *rating.AverageRating)
	assert.Equal(t, 2, rating.FeedbackCount)

	rating = NewShopRating([]*ShopFeedback{{Rating: 5}, {Rating: 4}, {Rating: 4}})
	assert.Equal(t, "4.33", *rating.AverageRating)

	empty := NewShopRating(nil)
	assert.Nil(t, empty.AverageRating)
	assert.Zero(t, empty.FeedbackCount)
}

func TestSplitIncome(t *testing.T) {
	split := SplitIncome(decimal.NewFromInt(200), decimal.RequireFromString("0.18"), decimal.NewFromInt(20))

	assert.True(t, split.PlatformIncome.Equal(decimal.NewFromInt(56)), split.PlatformIncome.String())
	assert.True(t, split.ShopIncome.Equal(decimal.NewFromInt(144)), split.ShopIncome.String())

	odd := SplitIncome(decimal.RequireFromString("33.33"), decimal.RequireFromString("0.18"), decimal.RequireFromString("1.11"))
	assert.True(t, odd.PlatformIncome.Add(odd.ShopIncome).Equal(odd.Subtotal))
	assert.Equal(t, int32(-2), odd.PlatformIncome.Exponent())
}

func TestShop_Coordinates(t *testing.T) {
	coord, err := (&Shop{Latitude: " 6.9271", Longitude: "79.8612"}).Coordinates()
	require.NoError(t, err)
	assert.InDelta(t, 6.9271, coord.Latitude, 1e-9)
	assert.InDelta(t, 79.8612, coord.Longitude, 1e-9)

	_, err = (&Shop{ID: 3, Latitude: "north", Longitude: "79.8"}).Coordinates()
	assert.ErrorContains(t, err, "invalid latitude")
}
