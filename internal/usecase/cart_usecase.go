// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// AddItemInput describes an add-or-increment cart mutation. A negative
// QuantityDelta decrements; the pre-check uses the stored quantity, never a
// caller-supplied one.
type AddItemInput struct {
	ProductID     uuid.UUID  `json:"product_id"`
	VariantID     *uuid.UUID `json:"variant_id,omitempty"`
	QuantityDelta int        `json:"quantity_delta"`
}

// SetItemQuantityInput describes an optimistic-concurrency quantity update.
// ExpectedOldQuantity must match the stored quantity or the update is
// rejected with a conflict. NewVariantID, when set, swaps the line to a
// different SKU atomically.
type SetItemQuantityInput struct {
	ProductID           uuid.UUID  `json:"product_id"`
	VariantID           *uuid.UUID `json:"variant_id,omitempty"`
	NewVariantID        *uuid.UUID `json:"new_variant_id,omitempty"`
	NewQuantity         int        `json:"new_quantity"`
	ExpectedOldQuantity int        `json:"expected_old_quantity"`
}

// CartUsecase defines the cart aggregate operations.
type CartUsecase interface {
	// AddItem validates the product and applies an atomic quantity delta to
	// the user's active cart, creating the cart on first use. A resulting
	// quantity of zero removes the line.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddItemInput) (*entity.Cart, error)

	// SetItemQuantity sets an exact line quantity under optimistic
	// concurrency, validating the new quantity against live stock.
	SetItemQuantity(ctx context.Context, userID uuid.UUID, input *SetItemQuantityInput) (*entity.Cart, error)

	// RemoveItem deletes the (product, variant) line and adjusts aggregates.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID) (*entity.Cart, error)

	// GetCart returns the user's active cart.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
