// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint passed to SCAN during invalidation.
const scanBatch = 100

// Redis is a [Cache] backed by a shared Redis instance.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis wraps an existing client.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// Get implements [Cache].
func (cache *Redis) Get(context context.Context, key string) ([]byte, bool, error) {
	data, err := cache.client.Get(context, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get %s: %w", key, err)
	}
	return data, true, nil
}

// Set implements [Cache].
func (cache *Redis) Set(context context.Context, key string, value []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set %s: %w", key, err)
	}
	return nil
}

// InvalidatePrefix implements [Cache] with SCAN + DEL.
func (cache *Redis) InvalidatePrefix(context context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := cache.client.Scan(context, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("cache: redis scan %s: %w", prefix, err)
		}

		if len(keys) > 0 {
			if err := cache.client.Del(context, keys...).Err(); err != nil {
				return fmt.Errorf("cache: redis del %s: %w", prefix, err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
