package repository

import (
	"context"
	"errors"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDiscountNotFound is returned when no discount matches (shop, code).
var ErrDiscountNotFound = errors.New("discount not found")

// ErrDiscountExhausted is returned when a conditional usage consume finds no
// remaining global quota.
var ErrDiscountExhausted = errors.New("discount has no remaining uses")

// ErrDiscountUsageNotFound is returned when reverting a usage that was never
// recorded for the user.
var ErrDiscountUsageNotFound = errors.New("discount usage not found")

// DiscountRepository defines the persistence operations for discount codes
// and their usage bookkeeping.
type DiscountRepository interface {
	// FindByCode retrieves the discount for (shop, code) with its usage list.
	FindByCode(ctx context.Context, shopID uuid.UUID, code string) (*entity.Discount, error)

	// Create inserts a new discount for a shop.
	Create(ctx context.Context, discount *entity.Discount) error

	// ListByShop returns the shop's discounts, newest first, with the total count.
	ListByShop(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Discount, int64, error)

	// Delete hard-deletes a discount and its usage rows.
	Delete(ctx context.Context, shopID, discountID uuid.UUID) error

	// ConsumeUsage atomically records one use: increments used_count,
	// decrements the remaining max_uses (conditional on quota remaining),
	// and appends the user to the usage list. Exhaustion maps to
	// ErrDiscountExhausted.
	ConsumeUsage(ctx context.Context, discountID, userID uuid.UUID) error

	// RevertUsage undoes ConsumeUsage: decrements used_count, restores one
	// global use, and removes one usage row for the user.
	RevertUsage(ctx context.Context, discountID, userID uuid.UUID) error
}
