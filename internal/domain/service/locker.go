// Package service defines the domain-level capability interfaces implemented
// by the infrastructure layer.
package service

import (
	"context"
	"time"
)

// InventoryLocker is the short-TTL mutual-exclusion capability used to
// serialize concurrent reservation attempts per product. It is a throughput
// optimization, not a correctness mechanism: the reservation algorithm must
// stay correct under the no-op implementation, relying only on the store's
// conditional decrement.
type InventoryLocker interface {
	// TryAcquire attempts to take the lock key for ttl. It returns a holder
	// token on success, acquired=false when another holder owns the key,
	// and a non-nil error only when the lock service itself failed.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)

	// Release frees the lock key if the token still owns it. Releasing a
	// key taken over by another holder is a no-op.
	Release(ctx context.Context, key, token string) error
}
