// Package cache provides the Redis-backed public menu cache.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"cardapio/config"
	"cardapio/internal/domain/lifecycle"
	"cardapio/internal/domain/service"
	"cardapio/internal/errors"
	"cardapio/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const menuKeyPrefix = "menu:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// New creates the menu cache. When Redis is disabled in the
// configuration it returns a no-op cache that always misses, so the
// public menu path works the same with and without Redis.
func New(params Params) (service.MenuCache, error) {
	if params.Config.Redis == nil || !params.Config.Redis.Enabled {
		params.Logger.Info("Menu cache disabled, serving menus straight from the database")

		return &noopMenuCache{}, nil
	}

	cfg := params.Config.Redis
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
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

	return &redisMenuCache{
		client:  client,
		ttl:     cfg.MenuTTL,
		metrics: params.Metrics,
	}, nil
}

// redisMenuCache stores the assembled public menu payload per slug.
// Entries are short-lived and explicitly invalidated on profile
// updates, so stale menus never outlive the TTL.
type redisMenuCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

func menuKey(slug string) string {
	return menuKeyPrefix + slug
}

func (c *redisMenuCache) GetMenu(ctx context.Context, slug string) ([]byte, error) {
	payload, err := c.client.Get(ctx, menuKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.metrics.ObserveMenuCache("miss")

			return nil, service.ErrCacheMiss
		}
		c.metrics.ObserveMenuCache("error")

		return nil, errors.Wrap(err, "failed to read menu cache")
	}
	c.metrics.ObserveMenuCache("hit")

	return payload, nil
}

func (c *redisMenuCache) SetMenu(ctx context.Context, slug string, payload []byte) error {
	if err := c.client.Set(ctx, menuKey(slug), payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write menu cache")
	}

	return nil
}

func (c *redisMenuCache) InvalidateMenu(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, menuKey(slug)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate menu cache")
	}

	return nil
}

// noopMenuCache always misses. Writes and invalidations succeed
// silently.
type noopMenuCache struct{}

func (*noopMenuCache) GetMenu(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("menu cache disabled: %w", service.ErrCacheMiss)
}

func (*noopMenuCache) SetMenu(context.Context, string, []byte) error { return nil }

func (*noopMenuCache) InvalidateMenu(context.Context, string) error { return nil }
