package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions is the full set of legal status transitions. Delivered
// and Cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

// IsCancellable reports whether an order in this status may still be
// cancelled by the buyer.
func (s OrderStatus) IsCancellable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// ValidOrderStatus reports whether the string names a known status.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// CheckoutSummary is the priced breakdown of an order.
type CheckoutSummary struct {
	TotalPrice    float64 `json:"total_price"`
	ShippingFee   float64 `json:"shipping_fee"`
	TotalDiscount float64 `json:"total_discount"`
	TotalCheckout float64 `json:"total_checkout"`
}

// OrderLine is an immutable snapshot of a purchased line. Later catalog
// price changes must not retroactively alter it.
type OrderLine struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
}

// OrderShopGroup is the per-shop slice of an order with its own applied
// discount and line snapshots.
type OrderShopGroup struct {
	ShopID             uuid.UUID   `json:"shop_id"`
	DiscountCode       string      `json:"discount_code,omitempty"`
	DiscountID         *uuid.UUID  `json:"discount_id,omitempty"`
	PriceRaw           float64     `json:"price_raw"`
	PriceApplyDiscount float64     `json:"price_apply_discount"`
	Lines              []OrderLine `json:"lines"`
}

// ShippingAddress is the address snapshot taken at placement time.
type ShippingAddress struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Country   string `json:"country"`
	ZipCode   string `json:"zip_code"`
}

// PaymentInfo is the payment snapshot taken at placement time.
type PaymentInfo struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

// Order is the placed-order aggregate. order shop groups are an immutable
// snapshot of what was purchased; the order itself is never deleted,
// cancellation is a status.
type Order struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	CartID         uuid.UUID         `json:"cart_id"`
	Status         OrderStatus       `json:"status"`
	Checkout       CheckoutSummary   `json:"checkout"`
	Shipping       ShippingAddress   `json:"shipping"`
	Payment        PaymentInfo       `json:"payment"`
	ShopGroups     []OrderShopGroup  `json:"shop_groups"`
	TrackingNumber string            `json:"tracking_number"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// AllLines flattens the line snapshots across all shop groups.
func (o *Order) AllLines() []OrderLine {
	var lines []OrderLine
	for _, group := range o.ShopGroups {
		lines = append(lines, group.Lines...)
	}

	return lines
}
