package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_ApplyLineDelta_NewLine(t *testing.T) {
	cart := NewActiveCart(uuid.New())
	productID := uuid.New()
	shopID := uuid.New()

	quantity, found := cart.ApplyLineDelta(productID, nil, 2, 100, shopID, "Keyboard", "")
	require.True(t, found)
	assert.Equal(t, 2, quantity)
	assert.Equal(t, 2, cart.ItemsCount)
	assert.InDelta(t, 200.0, cart.TotalPrice, 1e-9)
	assert.True(t, cart.ConsistentTotals())
}

func TestCart_ApplyLineDelta_MergesSameSKU(t *testing.T) {
	cart := NewActiveCart(uuid.New())
	productID := uuid.New()
	shopID := uuid.New()

	cart.ApplyLineDelta(productID, nil, 2, 100, shopID, "Keyboard", "")
	quantity, found := cart.ApplyLineDelta(productID, nil, 3, 100, shopID, "Keyboard", "")

	require.True(t, found)
	assert.Equal(t, 5, quantity)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.ItemsCount)
	assert.True(t, cart.ConsistentTotals())
}

func TestCart_ApplyLineDelta_VariantsAreDistinctSKUs(t *testing.T) {
	cart := NewActiveCart(uuid.New())
	productID := uuid.New()
	shopID := uuid.New()
	variantA := uuid.New()
	variantB := uuid.New()

	cart.ApplyLineDelta(productID, &variantA, 1, 100, shopID, "Shirt", "")
	cart.ApplyLineDelta(productID, &variantB, 1, 120, shopID, "Shirt", "")
	cart.ApplyLineDelta(productID, nil, 1, 90, shopID, "Shirt", "")

	assert.Len(t, cart.Lines, 3)
	assert.Equal(t, 3, cart.ItemsCount)
	assert.True(t, cart.ConsistentTotals())
}

func TestCart_ApplyLineDelta_NegativeDeltaClampsAtZero(t *testing.T) {
	cart := NewActiveCart(uuid.New())
	productID := uuid.New()
	shopID := uuid.New()

	cart.ApplyLineDelta(productID, nil, 2, 100, shopID, "Keyboard", "")
	quantity, found := cart.ApplyLineDelta(productID, nil, -5, 100, shopID, "Keyboard", "")

	require.True(t, found)
	assert.Equal(t, 0, quantity)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.ItemsCount)
	assert.InDelta(t, 0.0, cart.TotalPrice, 1e-9)
}

func TestCart_ApplyLineDelta_DecrementMissingLine(t *testing.T) {
	cart := NewActiveCart(uuid.New())

	_, found := cart.ApplyLineDelta(uuid.New(), nil, -1, 100, uuid.New(), "Keyboard", "")
	assert.False(t, found)
	assert.Empty(t, cart.Lines)
}

func TestCart_RemoveLine(t *testing.T) {
	cart := NewActiveCart(uuid.New())
	productID := uuid.New()
	shopID := uuid.New()

	cart.ApplyLineDelta(productID, nil, 3, 50, shopID, "Mouse", "")
	require.True(t, cart.RemoveLine(productID, nil))

	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.ItemsCount)
	assert.InDelta(t, 0.0, cart.TotalPrice, 1e-9)
	assert.False(t, cart.RemoveLine(productID, nil))
}

func TestCartLine_SameSKU(t *testing.T) {
	productID := uuid.New()
	variantID := uuid.New()
	otherVariant := uuid.New()

	base := &CartLine{ProductID: productID}
	assert.True(t, base.SameSKU(productID, nil))
	assert.False(t, base.SameSKU(productID, &variantID))
	assert.False(t, base.SameSKU(uuid.New(), nil))

	withVariant := &CartLine{ProductID: productID, VariantID: &variantID}
	assert.True(t, withVariant.SameSKU(productID, &variantID))
	assert.False(t, withVariant.SameSKU(productID, &otherVariant))
	assert.False(t, withVariant.SameSKU(productID, nil))
}
