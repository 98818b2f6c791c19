package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Shipping and payment fields are
// flattened snapshots taken at placement time; orders are never deleted,
// cancellation is a status.
type OrderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CartID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalPrice     float64   `gorm:"type:decimal(12,2);not null"`
	ShippingFee    float64   `gorm:"type:decimal(12,2);not null"`
	TotalDiscount  float64   `gorm:"type:decimal(12,2);not null"`
	TotalCheckout  float64   `gorm:"type:decimal(12,2);not null"`
	Recipient      string    `gorm:"type:varchar(100);not null"`
	Phone          string    `gorm:"type:varchar(30);not null"`
	Street         string    `gorm:"type:text;not null"`
	City           string    `gorm:"type:varchar(100);not null"`
	Country        string    `gorm:"type:varchar(100);not null"`
	ZipCode        string    `gorm:"type:varchar(20)"`
	PaymentMethod  string    `gorm:"type:varchar(50);not null"`
	PaymentStatus  string    `gorm:"type:varchar(50);not null"`
	TrackingNumber string    `gorm:"type:varchar(64);index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	ShopGroups []OrderShopGroupModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderShopGroupModel mirrors the 'order_shop_groups' table, one row per
// shop slice of an order with its applied discount.
type OrderShopGroupModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShopID             uuid.UUID  `gorm:"type:uuid;not null"`
	DiscountCode       string     `gorm:"type:varchar(64)"`
	DiscountID         *uuid.UUID `gorm:"type:uuid"`
	PriceRaw           float64    `gorm:"type:decimal(12,2);not null"`
	PriceApplyDiscount float64    `gorm:"type:decimal(12,2);not null"`
	CreatedAt          time.Time

	Lines []OrderLineModel `gorm:"foreignKey:ShopGroupID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderShopGroupModel) TableName() string {
	return "order_shop_groups"
}

// OrderLineModel mirrors the 'order_lines' table. Rows are immutable price
// and name snapshots.
type OrderLineModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopGroupID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null"`
	VariantID   *uuid.UUID `gorm:"type:uuid"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Quantity    int        `gorm:"not null"`
	UnitPrice   float64    `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
