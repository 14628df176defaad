package config

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes the connection used for rate limiting and the public
// content response cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func loadRedis() RedisConfig {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		host := getenv("REDIS_HOST", "localhost")
		port := getenv("REDIS_PORT", "6379")
		addr = host + ":" + port
	}
	return RedisConfig{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       envInt("REDIS_DB", 0),
	}
}

// NewRedisClient connects to Redis and verifies the connection with a short
// ping. It returns nil when Redis is unreachable; callers degrade by running
// without rate limiting and caching.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
