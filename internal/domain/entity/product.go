package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a menu item sold by exactly one shop.
type Product struct {
	ID          int64               `json:"id"`
	ShopID      int64               `json:"shop_id"`
	CategoryID  int64               `json:"category_id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	Image       *string             `json:"image"`
	Active      bool                `json:"active"`
	Deleted     bool                `json:"-"`
	Variants    []*ProductVariant   `json:"product_variant,omitempty"`
	Promotions  []*ProductPromotion `json:"product_promotion,omitempty"`
}

// ProductVariant is a priced option of a product (size, portion).
// Its price replaces the product price when selected.
type ProductVariant struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Active    bool            `json:"active"`
}

// Promotion is a discount campaign that products can join.
type Promotion struct {
	ID                int64            `json:"id"`
	Title             string           `json:"title"`
	Description       *string          `json:"description"`
	Code              *string          `json:"code"`
	Image             *string          `json:"image"`
	Type              string           `json:"type"`
	Value             decimal.Decimal  `json:"value"`
	MinOrderAmount    *decimal.Decimal `json:"min_order_amount"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount"`
	StartDate         *time.Time       `json:"start_date"`
	EndDate           *time.Time       `json:"end_date"`
	Active            bool             `json:"active"`
}

// ProductPromotion links a product to a promotion.
type ProductPromotion struct {
	ID        int64      `json:"id"`
	Promotion *Promotion `json:"promotion"`
}
