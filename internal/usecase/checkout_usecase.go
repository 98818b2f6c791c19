package usecase

import (
	"context"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutItemInput is one cart line submitted at checkout, with the price
// the client displayed so the server can detect drift.
type CheckoutItemInput struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
}

// ShopGroupInput is the per-shop slice of a checkout, carrying at most one
// discount code.
type ShopGroupInput struct {
	ShopID       uuid.UUID           `json:"shop_id"`
	DiscountCode string              `json:"discount_code,omitempty"`
	Items        []CheckoutItemInput `json:"items"`
}

// ReviewInput is the client's view of the cart at checkout time.
type ReviewInput struct {
	CartID     uuid.UUID        `json:"cart_id"`
	ShopGroups []ShopGroupInput `json:"shop_groups"`
}

// ShopGroupReview is one shop's repriced slice of a checkout review.
type ShopGroupReview struct {
	ShopID             uuid.UUID          `json:"shop_id"`
	ShopName           string             `json:"shop_name"`
	DiscountCode       string             `json:"discount_code,omitempty"`
	DiscountID         *uuid.UUID         `json:"discount_id,omitempty"`
	Lines              []entity.OrderLine `json:"lines"`
	PriceRaw           float64            `json:"price_raw"`
	PriceApplyDiscount float64            `json:"price_apply_discount"`
}

// ReviewOutput is the authoritative repriced checkout. Review is pure
// computation and never mutates state, so repeating it yields the same
// result for the same inputs.
type ReviewOutput struct {
	ShopGroups []ShopGroupReview      `json:"shop_groups"`
	Summary    entity.CheckoutSummary `json:"summary"`
}

// CheckoutUsecase defines the pre-order review operations.
type CheckoutUsecase interface {
	// Review validates the client's cart snapshot against live server state,
	// reprices every line, evaluates discounts per shop group and returns
	// the full summary. Stale prices or quantities fail the whole review.
	Review(ctx context.Context, userID uuid.UUID, input *ReviewInput) (*ReviewOutput, error)

	// DefaultAddress returns the user's default shipping address.
	DefaultAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
}
