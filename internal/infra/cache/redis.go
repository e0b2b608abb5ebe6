// Package cache holds the Redis client and the read-side caches built on it.
package cache

import (
	"context"
	"log/slog"

	"bookshelf/config"
	"bookshelf/internal/domain/lifecycle"
	"bookshelf/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client. When the redis section is absent from the
// configuration the client is nil and callers run uncached.
func New(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		params.Logger.Info("redis not configured, collection cache disabled")

		return nil, nil
	}

	cfg := params.Config.Redis
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

	return client, nil
}
