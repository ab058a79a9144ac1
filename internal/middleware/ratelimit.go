package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/service-booking/internal/httperr"
)

// Limiter counts hits per key inside a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ======================================================
// In-process fixed window
// ======================================================

type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu        sync.Mutex
	buckets   map[string]*bucket
	now       func() time.Time
	lastSweep time.Time
}

type bucket struct {
	count int
	reset time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (rl *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	b, ok := rl.buckets[key]
	if !ok || now.After(b.reset) {
		rl.buckets[key] = &bucket{count: 1, reset: now.Add(rl.window)}
		return true, nil
	}

	if b.count >= rl.limit {
		return false, nil
	}

	b.count++
	return true, nil
}

// sweep drops expired buckets, at most once per window.
func (rl *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	rl.lastSweep = now

	for key, b := range rl.buckets {
		if now.After(b.reset) {
			delete(rl.buckets, key)
		}
	}
}

// Len reports how many keys are currently tracked.
func (rl *MemoryLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// ======================================================
// Redis fixed window, shared across replicas
// ======================================================

type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rl.prefix + key

	n, err := rl.rdb.Incr(ctx, k).Result()
	if err != nil {
		return true, err
	}
	if n == 1 {
		if err := rl.rdb.Expire(ctx, k, rl.window).Err(); err != nil {
			return true, err
		}
	}

	return n <= int64(rl.limit), nil
}

// ======================================================
// Middleware
// ======================================================

// RateLimit rejects with 429 once a client exceeds its window. Limiter
// errors let the request through.
func RateLimit(l Limiter, window time.Duration) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(window / time.Second))

	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()

		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			_ = c.Error(err)
		}
		if !ok {
			c.Header("Retry-After", retryAfter)
			httperr.Abort(c, http.StatusTooManyRequests, "too_many_requests", "Too many requests, please try again later")
			return
		}

		c.Next()
	}
}
