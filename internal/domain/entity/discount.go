package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType enumerates how a discount value is interpreted.
type DiscountType string

const (
	// DiscountTypePercentage discounts total × value / 100.
	DiscountTypePercentage DiscountType = "percentage"
	// DiscountTypeFixedAmount discounts the value directly, not scaled.
	DiscountTypeFixedAmount DiscountType = "fixed_amount"
)

// DiscountApplies enumerates which products a discount covers.
type DiscountApplies string

const (
	DiscountAppliesAll      DiscountApplies = "all"
	DiscountAppliesSpecific DiscountApplies = "specific"
)

// Discount is a shop-scoped discount code. MaxUses is the remaining global
// quota: consumption decrements it, cancellation restores one use.
// MaxUsesPerUser follows the same convention (zero grants nothing, negative
// is unlimited). UsedUserIDs is the per-user usage list backing the per-user
// limit.
type Discount struct {
	ID             uuid.UUID       `json:"id"`
	ShopID         uuid.UUID       `json:"shop_id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Type           DiscountType    `json:"type"`
	Value          float64         `json:"value"`
	MaxUses        int             `json:"max_uses"`
	MaxUsesPerUser int             `json:"max_uses_per_user"`
	UsedCount      int             `json:"used_count"`
	MinOrderValue  float64         `json:"min_order_value"`
	StartsAt       time.Time       `json:"starts_at"`
	EndsAt         time.Time       `json:"ends_at"`
	IsActive       bool            `json:"is_active"`
	AppliesTo      DiscountApplies `json:"applies_to"`
	ProductIDs     []uuid.UUID     `json:"product_ids,omitempty"`
	UsedUserIDs    []uuid.UUID     `json:"used_user_ids,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ComputeAmount returns the discount amount for the given order total.
func (d *Discount) ComputeAmount(orderTotal float64) float64 {
	if d.Type == DiscountTypePercentage {
		return orderTotal * d.Value / 100
	}

	return d.Value
}

// WithinValidity reports whether now falls inside the validity window.
func (d *Discount) WithinValidity(now time.Time) bool {
	return !now.Before(d.StartsAt) && !now.After(d.EndsAt)
}

// UsedBy reports whether the user already appears in the usage list.
func (d *Discount) UsedBy(userID uuid.UUID) bool {
	for _, id := range d.UsedUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}

// CoversProduct reports whether the discount applies to the given product.
func (d *Discount) CoversProduct(productID uuid.UUID) bool {
	if d.AppliesTo == DiscountAppliesAll {
		return true
	}
	for _, id := range d.ProductIDs {
		if id == productID {
			return true
		}
	}

	return false
}
