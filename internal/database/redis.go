package database

import (
	"context"
	"time"

	"aistudio-backend/config"

	"github.com/go-redis/redis/v8"
)

const redisPingTimeout = 5 * time.Second

// ConnectRedis opens a client to the configured Redis and verifies it answers.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// NewFormStore picks the Redis-backed store when Redis is configured and the
// in-process store otherwise.
func NewFormStore(ctx context.Context, cfg *config.Config) (FormStore, error) {
	if !cfg.RedisEnabled() {
		return NewMemoryFormStore(cfg.FormStateTTL), nil
	}
	client, err := ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewRedisFormStore(client, cfg.FormStateTTL), nil
}
