package cli

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/tcfw/docloader/internal/config"
	"github.com/tcfw/docloader/pkg/cache"
)

// buildCache constructs the configured cache backend; a nil cache
// means resolutions go uncached
func buildCache(cfg *config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheBackendMemory:
		return cache.NewMemory(cfg.TTL), nil
	case config.CacheBackendRedis:
		client, err := connectRedis(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to redis")
		}

		return cache.NewRedis(client), nil
	default:
		return nil, nil
	}
}

func connectRedis(cfg *config.CacheConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
