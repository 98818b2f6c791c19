package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Addresses []AddressModel      `gorm:"foreignKey:UserID"`
	OrderRefs []UserOrderRefModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AddressModel mirrors the 'addresses' table. At most one row per user is
// flagged as the default delivery address.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Recipient string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(30);not null"`
	Street    string    `gorm:"type:text;not null"`
	City      string    `gorm:"type:varchar(100);not null"`
	Country   string    `gorm:"type:varchar(100);not null"`
	ZipCode   string    `gorm:"type:varchar(20)"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// UserOrderRefModel mirrors the 'user_order_refs' table, the per-user order
// history reference list appended to after each successful placement.
type UserOrderRefModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserOrderRefModel) TableName() string {
	return "user_order_refs"
}
