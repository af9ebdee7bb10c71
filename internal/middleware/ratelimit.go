package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/acs-faq/backend/internal/metrics"
	"github.com/acs-faq/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// CounterStore counts requests per key inside a fixed window.
type CounterStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter allows rate requests per minute per client IP.
type RateLimiter struct {
	store  CounterStore
	rate   int
	window time.Duration
	logger *logrus.Logger
}

func NewRateLimiter(store CounterStore, rate int, logger *logrus.Logger) *RateLimiter {
	return &RateLimiter{
		store:  store,
		rate:   rate,
		window: time.Minute,
		logger: logger,
	}
}

// RateLimit middleware function. A store error lets the request through.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rate <= 0 {
			c.Next()
			return
		}

		count, err := rl.store.Increment(c.Request.Context(), c.ClientIP(), rl.window)
		if err != nil {
			rl.logger.WithError(err).Warn("Rate limit store unavailable")
			c.Next()
			return
		}

		if count > int64(rl.rate) {
			metrics.RateLimited.Inc()
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Rate limit exceeded", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// MemoryStore keeps counters in process. Suitable for a single instance.
type MemoryStore struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	now      func() time.Time
	done     chan struct{}
}

type visitor struct {
	windowStart time.Time
	count       int64
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		visitors: make(map[string]*visitor),
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go s.cleanupVisitors(time.Minute)
	return s
}

func (s *MemoryStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	v, exists := s.visitors[key]
	if !exists || now.Sub(v.windowStart) > window {
		s.visitors[key] = &visitor{windowStart: now, count: 1}
		return 1, nil
	}

	v.count++
	return v.count, nil
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) cleanupVisitors(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			for key, v := range s.visitors {
				if s.now().Sub(v.windowStart) > 5*time.Minute {
					delete(s.visitors, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

// RedisStore shares counters between instances.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "ratelimit:"}
}

func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := s.prefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set rate window: %w", err)
		}
	}
	return count, nil
}
