package cache

import (
	"github.com/buildra-io/sitetrack/internal/config"
	"github.com/redis/go-redis/v9"
)

// New builds the shared Redis client.
func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}
