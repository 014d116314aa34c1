package middleware

import (
	"time"

	"mycloudmen/config"
	domainerrors "mycloudmen/internal/domain/errors"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultLimiterClients = 10_000
	limiterIdleTTL        = 10 * time.Minute
)

// LoginRateLimiter throttles login attempts per client IP.
type LoginRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewLoginRateLimiter creates a limiter allowing rateLimit.loginPerMinute
// attempts per minute with rateLimit.loginBurst burst.
func NewLoginRateLimiter(cfg *config.Config) *LoginRateLimiter {
	perMinute := max(cfg.RateLimit.LoginPerMinute, 1)

	return &LoginRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](defaultLimiterClients, nil, limiterIdleTTL),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    max(cfg.RateLimit.LoginBurst, 1),
	}
}

func (l *LoginRateLimiter) limiter(key string) *rate.Limiter {
	if limiter, ok := l.limiters.Get(key); ok {
		return limiter
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(key, limiter)

	return limiter
}

// Limit rejects the request with 429 once the client IP is over budget.
func (l *LoginRateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !l.limiter(c.RealIP()).Allow() {
			c.Response().Header().Set("Retry-After", "60")

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}
