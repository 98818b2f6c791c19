package repository

import (
	"context"
	"errors"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInventoryNotFound is returned when a product has no inventory record.
var ErrInventoryNotFound = errors.New("inventory record not found")

// ErrInsufficientStock is returned when a conditional decrement finds less
// stock than requested. Carries no quantity; callers re-read the record to
// report availability.
var ErrInsufficientStock = errors.New("insufficient stock")

// InventoryRepository defines the persistence operations for stock counters.
// Stock is mutated only through the conditional decrement/increment below;
// direct unconditional writes are forbidden so the count can never go
// negative under concurrent reservations.
type InventoryRepository interface {
	// FindByProduct retrieves the inventory record for a product.
	FindByProduct(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error)

	// AddStock upserts the inventory record, adding quantity to the stock
	// count and seeding the record when the product has none yet.
	AddStock(ctx context.Context, productID uuid.UUID, shopID *uuid.UUID, quantity int, location string) error

	// DecrementStockIfAvailable atomically subtracts quantity from the
	// stock count only when the current stock covers it. A matched-no-row
	// update maps to ErrInsufficientStock.
	DecrementStockIfAvailable(ctx context.Context, productID uuid.UUID, quantity int) error

	// IncrementStock atomically adds quantity back to the stock count
	// (reservation rollback and cancellation restock).
	IncrementStock(ctx context.Context, productID uuid.UUID, quantity int) error

	// CreateReservation writes the audit record for a successful decrement.
	CreateReservation(ctx context.Context, reservation *entity.InventoryReservation) error

	// UpdateReservationStatusByCart marks all of a cart's still-reserved
	// audit rows released or consumed. A cart without reserved rows is not
	// an error; the call is a no-op.
	UpdateReservationStatusByCart(ctx context.Context, cartID uuid.UUID, status entity.ReservationStatus) error
}
