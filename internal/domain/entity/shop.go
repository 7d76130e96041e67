package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Shop is a restaurant selling products through the platform.
type Shop struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Mobile      string          `json:"mobile"`
	Address     string          `json:"address"`
	Description *string         `json:"description"`
	OpeningTime *string         `json:"opening_time"`
	ClosingTime *string         `json:"closing_time"`
	ShopLogo    *string         `json:"shop_logo"`
	Banner      *string         `json:"banner"`
	Latitude    string          `json:"latitude"`  // Stored as a decimal string.
	Longitude   string          `json:"longitude"` // Stored as a decimal string.
	Recommended bool            `json:"recommended"`
	Active      bool            `json:"active"`
	Deleted     bool            `json:"-"`
	FCMToken    *string         `json:"-"`
	Feedback    []*ShopFeedback `json:"shop_feedback,omitempty"`
	Categories  []*ShopCategory `json:"shop_category,omitempty"`
	Products    []*Product      `json:"product,omitempty"` // Only loaded by the special-offers listing.
}

// Coordinates parses the stored latitude and longitude.
func (s *Shop) Coordinates() (Coordinate, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(s.Latitude), 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "shop %d has invalid latitude %q", s.ID, s.Latitude)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(s.Longitude), 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "shop %d has invalid longitude %q", s.ID, s.Longitude)
	}

	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// ShopFeedback is a customer's rating of a shop, optionally tied to an order.
type ShopFeedback struct {
	ID         int64     `json:"id"`
	ShopID     int64     `json:"-"`
	CustomerID int64     `json:"customer_id"`
	OrderID    *int64    `json:"order_id"`
	Rating     int       `json:"rating"` // 1 to 5.
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ShopCategory links a shop to a category it serves.
type ShopCategory struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"category_id"`
	Category   *Category `json:"category"`
}

// Category groups shops and products (e.g. "Pizza", "Rice & Curry").
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ShopRating is the derived rating shown on every shop listing.
type ShopRating struct {
	AverageRating *string `json:"average_rating"` // Two decimals, nil without feedback.
	FeedbackCount int     `json:"feedback_count"`
}

// NewShopRating computes the mean rating rounded to two decimals.
func NewShopRating(feedback []*ShopFeedback) ShopRating {
	if len(feedback) == 0 {
		return ShopRating{}
	}

	var sum int64
	for _, f := range feedback {
		sum += int64(f.Rating)
	}

	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(feedback)))).StringFixed(2)

	return ShopRating{AverageRating: &avg, FeedbackCount: len(feedback)}
}
