// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartStatus enumerates the lifecycle states of a shopping cart.
type CartStatus string

const (
	CartStatusActive    CartStatus = "active"
	CartStatusPending   CartStatus = "pending"
	CartStatusCompleted CartStatus = "completed"
	CartStatusCancelled CartStatus = "cancelled"
)

// CartLine is one (product, variant) entry in a cart. UnitPrice is the
// catalog price snapshotted at the time the line was added, not the live
// catalog price.
type CartLine struct {
	ID        uuid.UUID  `json:"id"`
	CartID    uuid.UUID  `json:"cart_id"`
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	ShopID    uuid.UUID  `json:"shop_id"`
	Name      string     `json:"name"`
	Thumbnail string     `json:"thumbnail"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subtotal returns the line's contribution to the cart total.
func (l *CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// SameSKU reports whether the line refers to the given (product, variant)
// pair. A nil variant matches only lines without a variant.
func (l *CartLine) SameSKU(productID uuid.UUID, variantID *uuid.UUID) bool {
	if l.ProductID != productID {
		return false
	}
	if l.VariantID == nil || variantID == nil {
		return l.VariantID == variantID ||
			(l.VariantID == nil && variantID == nil)
	}

	return *l.VariantID == *variantID
}

// Cart is the per-user shopping cart aggregate. ItemsCount and TotalPrice
// are denormalized running totals kept in step with the lines on every
// mutation; they are never recomputed lazily from a possibly-stale read.
type Cart struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	Status     CartStatus  `json:"status"`
	Lines      []*CartLine `json:"lines"`
	ItemsCount int         `json:"items_count"`
	TotalPrice float64     `json:"total_price"`
	OrderID    *uuid.UUID  `json:"order_id,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewActiveCart returns an empty active cart for the given user.
func NewActiveCart(userID uuid.UUID) *Cart {
	return &Cart{
		UserID: userID,
		Status: CartStatusActive,
	}
}

// FindLine returns the line matching the (product, variant) pair, or nil.
// Lines are unique per pair, so the first match is the only match.
func (c *Cart) FindLine(productID uuid.UUID, variantID *uuid.UUID) *CartLine {
	for _, line := range c.Lines {
		if line.SameSKU(productID, variantID) {
			return line
		}
	}

	return nil
}

// ApplyLineDelta adjusts the quantity of the matching line by delta and keeps
// the aggregates in step. When no line matches and delta is positive, a new
// line is appended. Lines whose quantity drops to zero or below are removed.
// Returns the resulting quantity of the touched line (0 when removed) and
// whether a line was found or created.
func (c *Cart) ApplyLineDelta(productID uuid.UUID, variantID *uuid.UUID, delta int, unitPrice float64, shopID uuid.UUID, name, thumbnail string) (int, bool) {
	line := c.FindLine(productID, variantID)
	if line == nil {
		if delta <= 0 {
			return 0, false
		}
		c.Lines = append(c.Lines, &CartLine{
			CartID:    c.ID,
			ProductID: productID,
			VariantID: variantID,
			ShopID:    shopID,
			Name:      name,
			Thumbnail: thumbnail,
			Quantity:  delta,
			UnitPrice: unitPrice,
		})
		c.ItemsCount += delta
		c.TotalPrice += float64(delta) * unitPrice

		return delta, true
	}

	// The pre-check for a decrement uses the stored quantity, never a
	// caller-supplied value, so the line can never go negative.
	if delta < 0 && line.Quantity+delta < 0 {
		delta = -line.Quantity
	}

	line.Quantity += delta
	c.ItemsCount += delta
	c.TotalPrice += float64(delta) * line.UnitPrice

	if line.Quantity <= 0 {
		c.removeLine(line)

		return 0, true
	}

	return line.Quantity, true
}

// RemoveLine deletes the matching line and subtracts its quantity and
// subtotal from the aggregates. Returns false when no line matches.
func (c *Cart) RemoveLine(productID uuid.UUID, variantID *uuid.UUID) bool {
	line := c.FindLine(productID, variantID)
	if line == nil {
		return false
	}

	c.ItemsCount -= line.Quantity
	c.TotalPrice -= line.Subtotal()
	c.removeLine(line)

	return true
}

func (c *Cart) removeLine(target *CartLine) {
	for i, line := range c.Lines {
		if line == target {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

			return
		}
	}
}

// ConsistentTotals reports whether the denormalized aggregates match the sum
// over the lines. Used by tests and reconciliation checks.
func (c *Cart) ConsistentTotals() bool {
	count := 0
	total := 0.0
	for _, line := range c.Lines {
		count += line.Quantity
		total += line.Subtotal()
	}

	return count == c.ItemsCount && floatEquals(total, c.TotalPrice)
}

func floatEquals(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	return diff < epsilon
}
