// Package model contains the GORM-specific structs mirroring the database
// tables. They are exported so the GORM Gen tool can reference them from
// other packages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. A partial unique index on
// (user_id) WHERE status = 'active' exists in the database and keeps at most
// one active cart per user; it is not expressible as a GORM tag.
type CartModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     string     `gorm:"type:varchar(20);not null;default:'active'"`
	ItemsCount int        `gorm:"not null;default:0"`
	TotalPrice float64    `gorm:"type:decimal(12,2);not null;default:0"`
	OrderID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Lines []CartLineModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartLineModel mirrors the 'cart_lines' table. The composite unique index
// keeps one line per (cart, product, variant) so concurrent adds merge into
// a quantity update instead of a duplicate row.
type CartLineModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_cart_sku"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_cart_sku"`
	VariantID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_sku"`
	ShopID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Thumbnail string     `gorm:"type:text"`
	Quantity  int        `gorm:"not null"`
	UnitPrice float64    `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
