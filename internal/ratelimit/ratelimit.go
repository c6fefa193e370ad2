// Package ratelimit limits requests per client with fixed windows whose
// counters live in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Counter counts hits per key in expiring windows. Hit increments key and
// gives it a time to live of window unless it already has one; both happen
// or neither does, so a key is never left counting without a TTL.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

// NewRedisCounter adapts a Redis client to Counter. EXPIRE NX needs
// Redis 7 or newer.
func NewRedisCounter(client *redis.Client) Counter {
	return &redisCounter{client: client}
}

func (r *redisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Limiter allows at most limit requests per client in each window
type Limiter struct {
	counter Counter
	limit   int
	window  time.Duration
	logger  *slog.Logger
}

// New creates a limiter
func New(counter Counter, limit int, window time.Duration, logger *slog.Logger) *Limiter {
	return &Limiter{
		counter: counter,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

// Allow records a request from client and reports whether it is within
// the limit
func (l *Limiter) Allow(ctx context.Context, client string) (bool, error) {
	key := keyPrefix + client
	count, err := l.counter.Hit(ctx, key, l.window)
	if err != nil {
		return false, fmt.Errorf("failed to count request: %w", err)
	}

	return count <= int64(l.limit), nil
}

// Middleware rejects requests over the limit with 429. Requests are let
// through when the counter store is unavailable.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ok, err := l.Allow(ctx, c.RealIP())
			if err != nil {
				l.logger.WarnContext(ctx, "rate limiter unavailable", "error", err)
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests)
			}
			return next(c)
		}
	}
}
