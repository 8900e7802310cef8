package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adpilot/internal/config/configs"
)

// NewRedisClient creates a Redis client for the campaign registry and
// verifies connectivity by pinging with a 5 second timeout. The caller
// must close the returned client when it is no longer needed.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return rdb, nil
}
