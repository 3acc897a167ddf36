package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// RedisCache is a read-through cache for catalog reads. It is optional: a
// nil *RedisCache is safe to call and behaves as a permanent miss, so the
// service runs store-only when no cache is configured.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{Client: client}, nil
}

func (r *RedisCache) Set(key string, value any, expiration time.Duration) error {
	if r == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisCache) Get(key string, dest any) error {
	if r == nil {
		return ErrMiss
	}
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Invalidate drops the given keys. Missing keys are not an error.
func (r *RedisCache) Invalidate(keys ...string) error {
	if r == nil || len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Close() error {
	if r == nil {
		return nil
	}
	return r.Client.Close()
}
