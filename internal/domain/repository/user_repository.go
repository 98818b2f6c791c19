package repository

import (
	"context"
	"errors"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrAddressNotFound is returned when the user has no matching address.
var ErrAddressNotFound = errors.New("address not found")

// UserRepository defines the operations on the user directory this core
// depends on. Actor existence is validated before any cart/order mutation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// AppendOrderRef appends an order id to the user's order history.
	AppendOrderRef(ctx context.Context, userID, orderID uuid.UUID) error

	// FindDefaultAddress retrieves the user's default delivery address.
	FindDefaultAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
}
