package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

// RateLimitConfig holds per-IP request budgets
type RateLimitConfig struct {
	RPS             float64
	Burst           int
	AuthPerMinute   int
	AuthPaths       []string
	CleanupInterval time.Duration
}

// DefaultRateLimitConfig returns limits for general and credential endpoints
func DefaultRateLimitConfig(rps float64, authPerMinute int) RateLimitConfig {
	return RateLimitConfig{
		RPS:             rps,
		Burst:           int(math.Max(1, math.Ceil(rps))),
		AuthPerMinute:   authPerMinute,
		AuthPaths:       []string{"/v1/auth/signin", "/v1/auth/signup"},
		CleanupInterval: cleanupInterval,
	}
}

type RateLimiter struct {
	config    RateLimitConfig
	authPaths map[string]struct{}
	visitors  map[string]*Visitor
	mutex     sync.Mutex
}

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter whose idle visitors are dropped until ctx ends
func NewRateLimiter(ctx context.Context, config RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		config:    config,
		authPaths: make(map[string]struct{}, len(config.AuthPaths)),
		visitors:  make(map[string]*Visitor),
	}
	for _, path := range config.AuthPaths {
		rl.authPaths[path] = struct{}{}
	}

	interval := config.CleanupInterval
	if interval <= 0 {
		interval = cleanupInterval
	}
	go rl.cleanupVisitors(ctx, interval)
	return rl
}

func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			key := "api:" + ip
			limit := rate.Limit(rl.config.RPS)
			burst := rl.config.Burst
			if _, ok := rl.authPaths[c.Request().URL.Path]; ok && rl.config.AuthPerMinute > 0 {
				key = "auth:" + ip
				limit = rate.Every(time.Minute / time.Duration(rl.config.AuthPerMinute))
				burst = rl.config.AuthPerMinute
			}

			if allowed, retryAfter := rl.allow(key, limit, burst); !allowed {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"code":        "RATE_LIMIT_EXCEEDED",
					"retry_after": retryAfter,
				})
			}

			return next(c)
		}
	}
}

// allow spends one token for key and, when none is left, reports the
// whole seconds until the next one
func (rl *RateLimiter) allow(key string, limit rate.Limit, burst int) (bool, int) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	visitor, exists := rl.visitors[key]
	if !exists {
		visitor = &Visitor{limiter: rate.NewLimiter(limit, burst)}
		rl.visitors[key] = visitor
	}
	visitor.lastSeen = now

	if visitor.limiter.AllowN(now, 1) {
		return true, 0
	}

	reservation := visitor.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, 60
	}
	delay := reservation.DelayFrom(now)
	reservation.CancelAt(now)

	return false, int(math.Ceil(delay.Seconds()))
}

func (rl *RateLimiter) cleanupVisitors(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mutex.Lock()
			for key, visitor := range rl.visitors {
				if time.Since(visitor.lastSeen) > visitorTTL {
					delete(rl.visitors, key)
				}
			}
			rl.mutex.Unlock()
		}
	}
}
