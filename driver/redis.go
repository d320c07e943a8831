package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	maxRetries      = 3
	minRetryBackoff = 100 * time.Millisecond
	maxRetryBackoff = 300 * time.Millisecond
	dialTimeout     = 5 * time.Second
	readTimeout     = 3 * time.Second
	writeTimeout    = 3 * time.Second
)

// ConnectRedis connects to the Redis server and returns a *redis.Client
func ConnectRedis(addr string, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              db,
		MaxRetries:      maxRetries,
		MinRetryBackoff: minRetryBackoff,
		MaxRetryBackoff: maxRetryBackoff,
		DialTimeout:     dialTimeout,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
	})

	// Test the connection
	if err := testRedis(client); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}

// testRedis pings the Redis server to verify the connection
func testRedis(client *redis.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Ping(ctx).Err()
}

var _ KV = (*RedisKV)(nil)

// RedisKV backs the persistence port with a Redis instance, so the cart
// survives across pages served by different processes.
type RedisKV struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisKV(client *redis.Client, logger *zap.Logger) *RedisKV {
	return &RedisKV{
		client: client,
		logger: logger,
	}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Error("Failed to get key from redis", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.logger.Error("Failed to set key in redis", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete key from redis", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
