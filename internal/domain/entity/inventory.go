package entity

import (
	"time"

	"github.com/google/uuid"
)

// InventoryStatus is derived from the stock count, never stored.
type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "in_stock"
	InventoryStatusRunningLow InventoryStatus = "running_low"
	InventoryStatusOutOfStock InventoryStatus = "out_of_stock"
)

// DefaultRunningLowThreshold applies when no threshold is configured.
const DefaultRunningLowThreshold = 5

// Inventory is the per-(product, shop) stock counter. Stock never goes
// negative: all decrements are conditional on sufficient stock.
type Inventory struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	ShopID    *uuid.UUID `json:"shop_id,omitempty"`
	Stock     int        `json:"stock"`
	Location  string     `json:"location"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// StatusAt derives the stock status with the given running-low threshold.
func (i *Inventory) StatusAt(runningLowThreshold int) InventoryStatus {
	if runningLowThreshold <= 0 {
		runningLowThreshold = DefaultRunningLowThreshold
	}
	switch {
	case i.Stock <= 0:
		return InventoryStatusOutOfStock
	case i.Stock <= runningLowThreshold:
		return InventoryStatusRunningLow
	default:
		return InventoryStatusInStock
	}
}

// ReservationStatus enumerates the audit states of a stock reservation.
type ReservationStatus string

const (
	ReservationStatusReserved ReservationStatus = "reserved"
	ReservationStatusReleased ReservationStatus = "released"
	ReservationStatusConsumed ReservationStatus = "consumed"
)

// InventoryReservation is the audit record written alongside each
// conditional stock decrement, used for rollback bookkeeping.
type InventoryReservation struct {
	ID         uuid.UUID         `json:"id"`
	ProductID  uuid.UUID         `json:"product_id"`
	CartID     uuid.UUID         `json:"cart_id"`
	Quantity   int               `json:"quantity"`
	Status     ReservationStatus `json:"status"`
	ReservedAt time.Time         `json:"reserved_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
