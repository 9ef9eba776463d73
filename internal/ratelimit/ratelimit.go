package ratelimit

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"keyhub/internal/common"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Limiter is a redis-backed fixed-window counter guarding the
// unauthenticated endpoints. A nil *Limiter is a no-op, so deployments
// without redis run unthrottled.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func New(addr, password string, db, limit int, window time.Duration) *Limiter {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	return &Limiter{client: client, limit: limit, window: window}
}

// Allow increments the caller's window counter and reports whether the
// request is within the limit. Redis outages fail open; throttling is an
// abuse guard, not a correctness dependency.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l == nil {
		return true
	}

	cacheKey := fmt.Sprintf("keyhub:ratelimit:%s", key)
	count, err := l.client.Incr(ctx, cacheKey).Result()
	if err != nil {
		log.Printf("rate limiter unavailable: %v", err)
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, cacheKey, l.window)
	}
	return count <= int64(l.limit)
}

// Middleware throttles per client IP and route path.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if l == nil {
				return next(c)
			}
			key := fmt.Sprintf("%s:%s", c.RealIP(), c.Path())
			if !l.Allow(c.Request().Context(), key) {
				return c.JSON(http.StatusTooManyRequests, common.CreateErrorResponse("RATE_LIMITED", "Too many requests", nil))
			}
			return next(c)
		}
	}
}

func (l *Limiter) Close() error {
	if l == nil {
		return nil
	}
	return l.client.Close()
}
