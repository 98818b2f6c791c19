package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryModel mirrors the 'inventories' table. Stock is only ever
// decremented through conditional updates guarded by stock >= quantity, so
// it can never go negative.
type InventoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_product_shop"`
	ShopID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_product_shop"`
	Stock     int        `gorm:"not null;default:0"`
	Location  string     `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventories"
}

// InventoryReservationModel mirrors the 'inventory_reservations' table, the
// audit trail written alongside each conditional stock decrement.
type InventoryReservationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CartID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'reserved'"`
	ReservedAt time.Time `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryReservationModel) TableName() string {
	return "inventory_reservations"
}
