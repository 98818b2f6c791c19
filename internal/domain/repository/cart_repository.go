// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a user has no active cart.
var ErrCartNotFound = errors.New("cart not found")

// ErrCartLineNotFound is returned when no line matches the (product, variant)
// pair, or a conditional quantity update matched no row.
var ErrCartLineNotFound = errors.New("cart line not found")

// ErrCartLineConflict is returned by the compare-and-set quantity update when
// the expected old quantity no longer matches. Callers re-fetch and retry.
var ErrCartLineConflict = errors.New("cart line quantity conflict")

// ErrDuplicateActiveCart is returned when inserting a second active cart for
// the same user; the partial unique index enforces at most one.
var ErrDuplicateActiveCart = errors.New("active cart already exists for user")

// CartRepository defines the persistence operations for the cart aggregate.
// Every mutating operation is a single conditional statement so concurrent
// increment/decrement requests from the same user interleave safely; methods
// touching both a line and the aggregates are meant to run inside one
// TransactionManager.Execute call.
type CartRepository interface {
	// FindActiveByUser retrieves the user's active cart with its lines.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateActive inserts an empty active cart for the user.
	CreateActive(ctx context.Context, cart *entity.Cart) error

	// FindLine retrieves the line for the (product, variant) pair.
	FindLine(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID) (*entity.CartLine, error)

	// InsertLine appends a new line to the cart.
	InsertLine(ctx context.Context, line *entity.CartLine) error

	// IncrementLineQuantity atomically adds delta to the line's quantity,
	// conditional on the result staying non-negative. Returns the new
	// quantity. A matched-no-row update maps to ErrCartLineNotFound.
	IncrementLineQuantity(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID, delta int) (int, error)

	// SetLineQuantityCAS atomically sets the line's quantity, conditional on
	// the current quantity equalling expectedOld. A mismatch maps to
	// ErrCartLineConflict; a missing line to ErrCartLineNotFound.
	SetLineQuantityCAS(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID, newQuantity, expectedOld int) error

	// DeleteLine removes the line for the (product, variant) pair.
	DeleteLine(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID) error

	// AdjustTotals atomically adds the deltas to the cart's denormalized
	// item count and total price.
	AdjustTotals(ctx context.Context, cartID uuid.UUID, itemsDelta int, priceDelta float64) error

	// Complete marks the cart completed, zeroes its aggregates, and records
	// the order it produced.
	Complete(ctx context.Context, cartID, orderID uuid.UUID) error
}
