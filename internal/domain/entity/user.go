package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the acting customer. OrderIDs is the order history reference list
// appended to after each successful placement.
type User struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	OrderIDs  []uuid.UUID `json:"order_ids,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Address is a stored delivery address; one per user may be the default.
type Address struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Recipient string    `json:"recipient"`
	Phone     string    `json:"phone"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	ZipCode   string    `json:"zip_code"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToShippingAddress snapshots the address for an order.
func (a *Address) ToShippingAddress() ShippingAddress {
	return ShippingAddress{
		Recipient: a.Recipient,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		Country:   a.Country,
		ZipCode:   a.ZipCode,
	}
}
