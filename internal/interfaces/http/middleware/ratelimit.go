package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"accesshub/internal/infrastructure/ratelimit"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/utils"
)

// LoginRateLimit throttles credential attempts per client IP. When the
// limiter backend is unreachable the request is allowed through so an
// outage never locks everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("login:%s", c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
