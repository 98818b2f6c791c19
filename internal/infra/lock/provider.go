package lock

import (
	"context"
	"log/slog"

	"shoply/config"
	"shoply/internal/domain/lifecycle"
	"shoply/internal/domain/service"
	"shoply/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the inventory locker, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewInventoryLocker creates an InventoryLocker based on configuration.
// Without a lock section the service runs lockless on the no-op
// implementation; reservation correctness does not depend on the lock.
func NewInventoryLocker(params Params) (service.InventoryLocker, error) {
	cfg := params.Config.Lock
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Inventory lock not configured, using no-op locker")

		return NewNoopLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("Using Redis inventory locker",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
	)

	return NewRedisLocker(client, logger), nil
}

// Module provides the inventory lock FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewInventoryLocker),
)
