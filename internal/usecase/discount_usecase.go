package usecase

import (
	"context"
	"time"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscountProduct is one line submitted for discount evaluation.
type DiscountProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// EvaluateDiscountInput carries a discount code and the shop-scoped lines it
// should apply to.
type EvaluateDiscountInput struct {
	Code     string            `json:"code"`
	UserID   uuid.UUID         `json:"user_id"`
	ShopID   uuid.UUID         `json:"shop_id"`
	Products []DiscountProduct `json:"products"`
}

// EvaluateDiscountOutput is the priced result of a successful evaluation.
type EvaluateDiscountOutput struct {
	DiscountID         uuid.UUID `json:"discount_id"`
	OrderTotal         float64   `json:"order_total"`
	DiscountAmount     float64   `json:"discount_amount"`
	TotalAfterDiscount float64   `json:"total_after_discount"`
}

// CreateDiscountInput describes a merchant-created discount.
type CreateDiscountInput struct {
	Code           string                 `json:"code"`
	Name           string                 `json:"name"`
	Type           entity.DiscountType    `json:"type"`
	Value          float64                `json:"value"`
	AppliesTo      entity.DiscountApplies `json:"applies_to"`
	ProductIDs     []uuid.UUID            `json:"product_ids,omitempty"`
	MinOrderAmount float64                `json:"min_order_amount"`
	MaxUses        int                    `json:"max_uses"`
	MaxUsesPerUser int                    `json:"max_uses_per_user"`
	ValidFrom      time.Time              `json:"valid_from"`
	ValidUntil     time.Time              `json:"valid_until"`
}

// DiscountUsecase defines discount lookup, evaluation and lifecycle
// operations.
type DiscountUsecase interface {
	// Evaluate runs the full eligibility chain for a code against a set of
	// lines and returns the computed amounts. It never consumes usage.
	Evaluate(ctx context.Context, input *EvaluateDiscountInput) (*EvaluateDiscountOutput, error)

	// Create registers a new discount under the given shop.
	Create(ctx context.Context, shopID uuid.UUID, input *CreateDiscountInput) (*entity.Discount, error)

	// ListByShop pages through a shop's discounts.
	ListByShop(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Discount, int64, error)

	// CancelUsage reverts one recorded use of a code for a user, restoring
	// the global quota.
	CancelUsage(ctx context.Context, shopID uuid.UUID, code string, userID uuid.UUID) error

	// Delete removes a discount owned by the shop.
	Delete(ctx context.Context, shopID, discountID uuid.UUID) error
}
