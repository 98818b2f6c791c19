package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const lockKeyPrefix = "lock:product:"

// Lock acquisition policy defaults when the config leaves them unset.
const (
	defaultLockTTL         = 3 * time.Second
	defaultLockMaxAttempts = 10
	defaultLockRetryDelay  = 30 * time.Millisecond
)

// reserveLines debits stock for every line inside the caller's transaction.
// Each decrement is conditional on sufficient stock, so correctness never
// depends on the lock; the per-product lock only serializes hot products to
// cut conflict retries. Any line failing aborts the whole set and the
// transaction rollback returns every prior debit.
func (srv *orderService) reserveLines(ctx context.Context, invRepo repository.InventoryRepository, cartID uuid.UUID, lines []entity.OrderLine) error {
	for _, line := range lines {
		if err := srv.reserveLine(ctx, invRepo, cartID, line); err != nil {
			return err
		}
	}

	return nil
}

func (srv *orderService) reserveLine(ctx context.Context, invRepo repository.InventoryRepository, cartID uuid.UUID, line entity.OrderLine) error {
	key := lockKeyPrefix + line.ProductID.String()

	token, locked := srv.acquireProductLock(ctx, key)

	err := invRepo.DecrementStockIfAvailable(ctx, line.ProductID, line.Quantity)

	// The lock exists only to cover the decrement; release as soon as it
	// resolves, not at the end of the transaction.
	if locked {
		srv.releaseProductLock(ctx, key, token)
	}

	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			available := 0
			if inventory, findErr := invRepo.FindByProduct(ctx, line.ProductID); findErr == nil {
				available = inventory.Stock
			}

			return domainerrors.ErrOutOfStock.WithDetails(
				fmt.Sprintf("product %s: available %d", line.ProductID, available))
		}

		return errors.Wrap(err, "failed to reserve stock")
	}

	reservation := &entity.InventoryReservation{
		ProductID:  line.ProductID,
		CartID:     cartID,
		Quantity:   line.Quantity,
		Status:     entity.ReservationStatusReserved,
		ReservedAt: time.Now(),
	}
	if err := invRepo.CreateReservation(ctx, reservation); err != nil {
		return errors.Wrap(err, "failed to record reservation")
	}

	return nil
}

// acquireProductLock tries to take the per-product lock with bounded retries.
// A failing lock service degrades to lockless operation: the failure is
// logged and the reservation proceeds, never surfacing to the caller.
func (srv *orderService) acquireProductLock(ctx context.Context, key string) (string, bool) {
	ttl := srv.lockTTL
	attempts := srv.lockMaxAttempts
	delay := srv.lockRetryDelay

	for attempt := 0; attempt < attempts; attempt++ {
		token, acquired, err := srv.locker.TryAcquire(ctx, key, ttl)
		if err != nil {
			srv.log(ctx).Warn("Inventory lock degraded, proceeding without lock",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return "", false
		}
		if acquired {
			return token, true
		}

		select {
		case <-ctx.Done():
			return "", false
		case <-time.After(delay):
		}
	}

	srv.log(ctx).Debug("Inventory lock contention, proceeding without lock",
		slog.String("key", key),
		slog.Int("attempts", attempts),
	)

	return "", false
}

func (srv *orderService) releaseProductLock(ctx context.Context, key, token string) {
	if err := srv.locker.Release(ctx, key, token); err != nil {
		// The TTL reclaims an unreleased key; nothing to do but log.
		srv.log(ctx).Warn("Failed to release inventory lock",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
