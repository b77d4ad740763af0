package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/models"
)

const (
	defaultRateLimitMax    = 50
	defaultRateLimitWindow = time.Minute
)

// RateLimiter throttles screening requests per client IP over a sliding window.
// CORS preflights pass through untouched.
func RateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	max := cfg.Max
	if max <= 0 {
		max = defaultRateLimitMax
	}
	window := cfg.Window
	if window <= 0 {
		window = defaultRateLimitWindow
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
