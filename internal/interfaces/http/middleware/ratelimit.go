package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/infrastructure/ratelimit"
	"github.com/vendra-inc/vendra/internal/shared/logger"
	"github.com/vendra-inc/vendra/internal/shared/utils"
)

// PublicRateLimit throttles the unauthenticated renewal endpoints per client
// IP. If the limiter backend is unavailable the request is allowed through
// rather than blocking all renewal traffic.
func PublicRateLimit(limiter ratelimit.RateLimiter, requestsPerMinute int, log logger.Interface) gin.HandlerFunc {
	limit := ratelimit.Limit{RequestsPerMinute: requestsPerMinute}

	return func(c *gin.Context) {
		key := "public:" + c.ClientIP()

		allowed, err := limiter.Allow(key, limit)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"error", err,
				"client_ip", c.ClientIP())
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
