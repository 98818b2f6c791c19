// Package lock provides the Redis-backed implementation of the inventory
// lock plus a no-op fallback for lockless deployments.
package lock

import (
	"context"
	"log/slog"
	"time"

	"shoply/internal/domain/service"
	"shoply/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only when the stored token still
// matches, so a holder whose TTL expired cannot free a lock taken over by
// someone else.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

// redisLocker implements service.InventoryLocker with SET NX PX.
type redisLocker struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisLocker is the constructor for redisLocker.
func NewRedisLocker(client *redis.Client, logger *slog.Logger) service.InventoryLocker {
	return &redisLocker{
		client: client,
		logger: logger,
	}
}

// TryAcquire takes the key with a fresh holder token when it is free.
func (l *redisLocker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to acquire inventory lock")
	}
	if !ok {
		return "", false, nil
	}

	return token, true, nil
}

// Release frees the key if the token still owns it.
func (l *redisLocker) Release(ctx context.Context, key, token string) error {
	if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
		return errors.Wrap(err, "failed to release inventory lock")
	}

	return nil
}
