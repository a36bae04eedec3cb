package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type CacheBackend string

const (
	CacheBackendNone   CacheBackend = "none"
	CacheBackendMemory CacheBackend = "memory"
	CacheBackendRedis  CacheBackend = "redis"
)

type CacheConfig struct {
	Backend CacheBackend
	TTL     time.Duration

	RedisAddr     string
	RedisPassword string
}

func buildCacheConfig() (*CacheConfig, error) {
	c := &CacheConfig{
		Backend:       CacheBackend(viper.GetString("cache.backend")),
		TTL:           viper.GetDuration("cache.ttl"),
		RedisAddr:     viper.GetString("redis.addr"),
		RedisPassword: viper.GetString("redis.password"),
	}

	switch c.Backend {
	case CacheBackendNone, CacheBackendMemory, CacheBackendRedis:
	default:
		return nil, errors.Errorf("unknown cache backend %q", c.Backend)
	}

	if c.Backend == CacheBackendRedis && c.RedisAddr == "" {
		return nil, errors.New("redis backend requires redis.addr")
	}

	return c, nil
}
