package lock

import (
	"context"
	"time"

	"shoply/internal/domain/service"
)

// noopLocker always grants the lock. Reservation stays correct without
// mutual exclusion because the stock decrement itself is conditional; the
// lock only reduces contention on the hot row.
type noopLocker struct{}

// NewNoopLocker is the constructor for noopLocker.
func NewNoopLocker() service.InventoryLocker {
	return &noopLocker{}
}

func (noopLocker) TryAcquire(_ context.Context, _ string, _ time.Duration) (string, bool, error) {
	return "", true, nil
}

func (noopLocker) Release(_ context.Context, _, _ string) error {
	return nil
}
