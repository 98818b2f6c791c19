package model

import (
	"time"

	"github.com/google/uuid"
)

// DiscountModel mirrors the 'discounts' table. MaxUses stores the remaining
// global quota; consuming a use decrements it and reverting restores it, so
// the exhaustion check is a single conditional update.
type DiscountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shop_code"`
	Code           string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_shop_code"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Type           string    `gorm:"type:varchar(20);not null"`
	Value          float64   `gorm:"type:decimal(12,2);not null"`
	MaxUses        int       `gorm:"not null;default:0"`
	MaxUsesPerUser int       `gorm:"not null;default:0"`
	UsedCount      int       `gorm:"not null;default:0"`
	MinOrderValue  float64   `gorm:"type:decimal(12,2);not null;default:0"`
	StartsAt       time.Time `gorm:"not null"`
	EndsAt         time.Time `gorm:"not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	AppliesTo      string    `gorm:"type:varchar(20);not null;default:'all'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Products []DiscountProductModel `gorm:"foreignKey:DiscountID"`
	Usages   []DiscountUsageModel   `gorm:"foreignKey:DiscountID"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}

// DiscountProductModel mirrors the 'discount_products' table, listing the
// products a 'specific' discount covers.
type DiscountProductModel struct {
	DiscountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountProductModel) TableName() string {
	return "discount_products"
}

// DiscountUsageModel mirrors the 'discount_usages' table, one row per
// consumed use. Reverting a use deletes one row for the user.
type DiscountUsageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DiscountID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	UsedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountUsageModel) TableName() string {
	return "discount_usages"
}
