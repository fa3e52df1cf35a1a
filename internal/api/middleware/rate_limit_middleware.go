package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	// Allow records one request for key and reports whether it fits the window.
	Allow(ctx context.Context, key string) (bool, int, time.Time, error)
	// Reset forgets the counter for key.
	Reset(ctx context.Context, key string) error
}

// RedisRateLimiter keeps the counters in redis so several API processes share them.
type RedisRateLimiter struct {
	client      *redis.Client
	prefix      string
	window      time.Duration
	maxRequests int64
	now         func() time.Time
}

// NewRedisRateLimiter creates a limiter whose keys live under prefix.
func NewRedisRateLimiter(client *redis.Client, prefix string, window time.Duration, maxRequests int64) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:      client,
		prefix:      prefix + "ratelimit:",
		window:      window,
		maxRequests: maxRequests,
		now:         time.Now,
	}
}

func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, int, time.Time, error) {
	redisKey := rl.prefix + key
	windowStart := rl.now().Truncate(rl.window)
	resetTime := windowStart.Add(rl.window)

	pipe := rl.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireAt(ctx, redisKey, resetTime)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, fmt.Errorf("rate limiter error: %w", err)
	}

	count := incr.Val()
	return count <= rl.maxRequests, remaining(rl.maxRequests, count), resetTime, nil
}

func (rl *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	return rl.client.Del(ctx, rl.prefix+key).Err()
}

type windowCounter struct {
	start time.Time
	count int64
}

// MemoryRateLimiter is the single-process limiter used with the memory and SQL stores.
type MemoryRateLimiter struct {
	mu          sync.Mutex
	counters    map[string]*windowCounter
	window      time.Duration
	maxRequests int64
	now         func() time.Time
}

func NewMemoryRateLimiter(window time.Duration, maxRequests int64) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		counters:    make(map[string]*windowCounter),
		window:      window,
		maxRequests: maxRequests,
		now:         time.Now,
	}
}

func (rl *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, int, time.Time, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	windowStart := rl.now().Truncate(rl.window)
	counter, ok := rl.counters[key]
	if !ok || !counter.start.Equal(windowStart) {
		// drop counters from finished windows
		for k, c := range rl.counters {
			if c.start.Before(windowStart) {
				delete(rl.counters, k)
			}
		}
		counter = &windowCounter{start: windowStart}
		rl.counters[key] = counter
	}
	counter.count++

	return counter.count <= rl.maxRequests, remaining(rl.maxRequests, counter.count), windowStart.Add(rl.window), nil
}

func (rl *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.counters, key)
	return nil
}

func remaining(max, count int64) int {
	if count >= max {
		return 0
	}
	return int(max - count)
}

// RateLimitMiddleware answers 429 once a client exceeds its window on a route.
// A nil limiter disables limiting. Limiter errors let the request through.
func RateLimitMiddleware(limiter RateLimiter, log *logger.Logger) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if log == nil {
		log = logger.NewNop()
	}
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()
		allowed, left, reset, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn("Rate limiter unavailable", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(left))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
		if !allowed {
			recordRejected("rate_limited")
			wait := int(time.Until(reset).Seconds()) + 1
			if wait < 1 {
				wait = 1
			}
			c.Header("Retry-After", strconv.Itoa(wait))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}
		c.Next()
	}
}
