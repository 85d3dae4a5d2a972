package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/galaxybooks/bookstore-backend/pkg/config"
)

// RateLimiter applies a per-client token bucket at the gateway edge.
// Clients are identified by IP; state for idle clients is dropped
// periodically so the map does not grow without bound.
type RateLimiter struct {
	cfg    config.RateLimitConfig
	logger *zap.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	cleanupInterval time.Duration
	lastCleanup     time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter from gateway configuration
func NewRateLimiter(cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		cfg:             cfg,
		logger:          logger.Named("ratelimit"),
		limiters:        make(map[string]*clientLimiter),
		cleanupInterval: 10 * time.Minute,
		lastCleanup:     time.Now(),
	}
}

// Middleware returns the gin handler enforcing the limit. Disabled
// configuration yields a no-op handler.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	if !r.cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if !r.allow(c.ClientIP()) {
			r.logger.Warn("Rate limit exceeded", zap.String("client", c.ClientIP()))
			c.AbortWithStatusJSON(429, gin.H{"message": "Too many requests"})
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if time.Since(r.lastCleanup) > r.cleanupInterval {
		r.cleanup()
	}

	l, ok := r.limiters[client]
	if !ok {
		l = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(r.cfg.RequestsPerSecond), r.cfg.Burst),
		}
		r.limiters[client] = l
	}
	l.lastSeen = time.Now()

	return l.limiter.Allow()
}

// cleanup drops limiters idle for longer than the cleanup interval.
// Caller holds the lock.
func (r *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-r.cleanupInterval)
	for client, l := range r.limiters {
		if l.lastSeen.Before(cutoff) {
			delete(r.limiters, client)
		}
	}
	r.lastCleanup = time.Now()
}
