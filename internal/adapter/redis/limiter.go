package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "cycletrack:ratelimit:"

// WindowLimiter is a fixed-window request counter shared by every API instance.
type WindowLimiter struct {
	client *goredis.Client
	limit  int64
	window time.Duration
}

// NewWindowLimiter allows limit hits per key in each window.
func NewWindowLimiter(client *goredis.Client, limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{client: client, limit: int64(limit), window: window}
}

// Allow counts one hit for key in the window containing now. When the limit is
// exceeded it returns false and the time left until the window resets.
func (l *WindowLimiter) Allow(ctx context.Context, key string, now time.Time) (bool, time.Duration, error) {
	windowStart := now.Truncate(l.window)
	redisKey := keyPrefix + key + ":" + strconv.FormatInt(windowStart.Unix(), 10)

	var incr *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, redisKey)
		// A little slack past the window so a skewed clock never sees a reset early.
		p.Expire(ctx, redisKey, l.window+time.Second)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit incr %s: %w", key, err)
	}

	if incr.Val() > l.limit {
		return false, windowStart.Add(l.window).Sub(now), nil
	}
	return true, 0, nil
}
