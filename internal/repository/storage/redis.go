package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// dialTimeout bounds the startup ping so an unreachable cache fails fast.
const dialTimeout = 2 * time.Second

// RedisStorage holds the connection shared by the redis-backed position cache.
type RedisStorage struct {
	Client *redis.Client
}

// NewRedisStorage connects to the redis database db at addr and checks it answers.
func NewRedisStorage(ctx context.Context, addr string, db int) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DB:          db,
		DialTimeout: dialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("position cache at %s is unreachable: %w", addr, err)
	}

	return &RedisStorage{Client: client}, nil
}

func (that *RedisStorage) Close() error {
	if err := that.Client.Close(); err != nil {
		return fmt.Errorf("failed to close position cache connection: %w", err)
	}

	return nil
}
