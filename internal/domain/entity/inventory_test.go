package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventory_StatusAt(t *testing.T) {
	assert.Equal(t, InventoryStatusOutOfStock, (&Inventory{Stock: 0}).StatusAt(5))
	assert.Equal(t, InventoryStatusRunningLow, (&Inventory{Stock: 1}).StatusAt(5))
	assert.Equal(t, InventoryStatusRunningLow, (&Inventory{Stock: 5}).StatusAt(5))
	assert.Equal(t, InventoryStatusInStock, (&Inventory{Stock: 6}).StatusAt(5))
}

func TestInventory_StatusAt_DefaultThreshold(t *testing.T) {
	// A non-positive threshold falls back to the default.
	assert.Equal(t, InventoryStatusRunningLow, (&Inventory{Stock: DefaultRunningLowThreshold}).StatusAt(0))
	assert.Equal(t, InventoryStatusInStock, (&Inventory{Stock: DefaultRunningLowThreshold + 1}).StatusAt(-1))
}
