package repository

import (
	"context"
	"errors"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the id.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderStatusConflict is returned by the conditional status update when
// the order is no longer in the expected source status.
var ErrOrderStatusConflict = errors.New("order status changed concurrently")

// OrderRepository defines the persistence operations for placed orders.
type OrderRepository interface {
	// Create inserts the order with its breakdown and line snapshots.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its shop groups.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate retrieves an order holding a row lock, serializing
	// concurrent status transitions for the same order.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first, with the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error)

	// List returns all orders, newest first, optionally filtered by status.
	List(ctx context.Context, status *entity.OrderStatus, limit, offset int) ([]*entity.Order, int64, error)

	// UpdateStatus moves the order from one status to another in a single
	// conditional update. A matched-no-row update maps to
	// ErrOrderStatusConflict.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to entity.OrderStatus) error
}
