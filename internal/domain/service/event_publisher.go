package service

import "context"

// Order event types published by the order pipeline.
const (
	OrderEventCreated        = "order.created"
	OrderEventCancelled      = "order.cancelled"
	OrderEventReconciliation = "order.reconciliation"
)

// OrderEvent is the payload published on order lifecycle changes.
// Reconciliation events flag post-insert bookkeeping steps that failed after
// the order row was committed and need out-of-band repair.
type OrderEvent struct {
	EventType string            `json:"event_type"`
	OrderID   string            `json:"order_id"`
	UserID    string            `json:"user_id"`
	RequestID string            `json:"request_id,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// EventPublisher publishes order lifecycle events to downstream consumers.
type EventPublisher interface {
	// PublishOrderEvent publishes a single order event.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any underlying connections.
	Close() error
}
