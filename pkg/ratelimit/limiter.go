// Package ratelimit implements a fixed-window request counter in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter struct {
	rdb    redis.Cmdable
	prefix string
	limit  int64
	window time.Duration
}

func New(rdb redis.Cmdable, prefix string, limit int64, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

// Allow counts one hit for key in the current window. The window starts at
// the first hit. Every hit re-arms a missing TTL, so a failed expire cannot
// leave a counter that never resets.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + ":" + key

	var incr *redis.IntCmd
	_, err := l.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("count %s: %w", k, err)
	}

	return incr.Val() <= l.limit, nil
}

func (l *Limiter) Window() time.Duration {
	return l.window
}
