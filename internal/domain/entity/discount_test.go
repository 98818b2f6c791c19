package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDiscount_ComputeAmount(t *testing.T) {
	percentage := &Discount{Type: DiscountTypePercentage, Value: 10}
	assert.InDelta(t, 50.0, percentage.ComputeAmount(500), 1e-9)
	assert.InDelta(t, 0.0, percentage.ComputeAmount(0), 1e-9)

	fixed := &Discount{Type: DiscountTypeFixedAmount, Value: 120}
	assert.InDelta(t, 120.0, fixed.ComputeAmount(500), 1e-9)
	// Fixed amounts are not scaled by the total.
	assert.InDelta(t, 120.0, fixed.ComputeAmount(80), 1e-9)
}

func TestDiscount_WithinValidity(t *testing.T) {
	now := time.Now()
	discount := &Discount{
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	}

	assert.True(t, discount.WithinValidity(now))
	assert.True(t, discount.WithinValidity(discount.StartsAt))
	assert.True(t, discount.WithinValidity(discount.EndsAt))
	assert.False(t, discount.WithinValidity(now.Add(-2*time.Hour)))
	assert.False(t, discount.WithinValidity(now.Add(2*time.Hour)))
}

func TestDiscount_CoversProduct(t *testing.T) {
	covered := uuid.New()
	other := uuid.New()

	all := &Discount{AppliesTo: DiscountAppliesAll}
	assert.True(t, all.CoversProduct(covered))
	assert.True(t, all.CoversProduct(other))

	specific := &Discount{
		AppliesTo:  DiscountAppliesSpecific,
		ProductIDs: []uuid.UUID{covered},
	}
	assert.True(t, specific.CoversProduct(covered))
	assert.False(t, specific.CoversProduct(other))
}

func TestDiscount_UsedBy(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	discount := &Discount{UsedUserIDs: []uuid.UUID{userA}}
	assert.True(t, discount.UsedBy(userA))
	assert.False(t, discount.UsedBy(userB))
}
