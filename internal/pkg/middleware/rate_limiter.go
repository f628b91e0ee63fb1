package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/utils"
)

// Counter increments a windowed counter
type Counter interface {
	IncrWithExpiry(ctx context.Context, key string, expiration time.Duration) (int64, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter Counter
	Key     string
	Limit   int
	Period  time.Duration
}

// RateLimiterMiddleware limits requests per client IP and route in fixed windows
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), c.RealIP())

			count, err := config.Counter.IncrWithExpiry(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.Error("Rate limiter error", logger.String("key", key), logger.Err(err))
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(config.Period.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates an IP based rate limiter
func IPRateLimiter(limit int, period time.Duration, counter Counter) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Counter: counter,
		Key:     "rate:ip",
		Limit:   limit,
		Period:  period,
	})
}
