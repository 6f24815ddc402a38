package cache

import (
	"context"
	"time"

	"github.com/bsm/redislock"
	"github.com/omnistock/inventory-service/config"
	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	Client *redis.Client
	locker *redislock.Client
}

func NewRedisClient(cfg *config.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisClient{
		Client: client,
		locker: redislock.New(client),
	}, nil
}

// ObtainLock acquires a distributed lock on key, retrying a few times
// before giving up so short contention windows don't fail the request.
func (c *RedisClient) ObtainLock(ctx context.Context, key string, ttl time.Duration) (*redislock.Lock, error) {
	return c.locker.Obtain(ctx, key, ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 3),
	})
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}
