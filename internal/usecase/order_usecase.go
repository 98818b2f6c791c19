package usecase

import (
	"context"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput carries the reviewed checkout plus shipping and payment
// details. The shop groups are re-validated server side before the order row
// is written.
type PlaceOrderInput struct {
	CartID     uuid.UUID              `json:"cart_id"`
	ShopGroups []ShopGroupInput       `json:"shop_groups"`
	Address    entity.ShippingAddress `json:"address"`
	Payment    entity.PaymentInfo     `json:"payment"`
}

// OrderUsecase defines the order pipeline and lifecycle operations.
type OrderUsecase interface {
	// Place runs the full placement pipeline. Re-validation happens first;
	// per-line stock reservation and the order insert then share one
	// transaction, so a failing line rolls both back. Once the order row
	// commits, cart closure, discount consumption and the other bookkeeping
	// run best effort, with failures reported through a reconciliation
	// event rather than a rollback.
	Place(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// Cancel cancels a cancellable order owned by the user and restores the
	// reserved stock in the same transaction.
	Cancel(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// UpdateStatus advances an order along the state machine. Invalid
	// transitions are rejected without side effects.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, to entity.OrderStatus) (*entity.Order, error)

	// GetByID returns an order, enforcing ownership.
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ListByUser pages through the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error)

	// List pages through all orders, optionally filtered by status.
	List(ctx context.Context, status *entity.OrderStatus, limit, offset int) ([]*entity.Order, int64, error)

	// TrackingQR renders the order's tracking number as a QR code PNG.
	TrackingQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
