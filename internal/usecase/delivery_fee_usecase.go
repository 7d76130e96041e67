package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// FeeQuote is the delivery price and ETA for one shop-to-customer trip.
type FeeQuote struct {
	Fee        decimal.Decimal // Rounded to cents.
	DistanceKm decimal.Decimal
	EtaMinutes int
	BaseFee    decimal.Decimal // Base fee of the config the quote was computed from.
}

// DeliveryFeeUsecase prices deliveries.
type DeliveryFeeUsecase interface {
	CalculateFee(ctx context.Context, shopID int64, latitude, longitude float64) (*FeeQuote, error)
}
