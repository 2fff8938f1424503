package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/infrastructure/ratelimit"
	"github.com/shjfcs/foodwatch/internal/shared/constants"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
	"github.com/shjfcs/foodwatch/internal/shared/utils"
)

// RateLimiter caps requests per authenticated employee, or per client IP for
// anonymous callers. The backing limiter is Redis when configured, so the cap
// holds across instances.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	scope   string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, perMinute int, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  ratelimit.RateLimitConfig{RequestsPerMinute: perMinute},
		scope:   scope,
		logger:  log,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.key(c)

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.config)
		if err != nil {
			// A limiter outage must not block uploads.
			rl.logger.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("rate limit exceeded", "key", key)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) key(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeyEmpID); ok {
		return fmt.Sprintf("%s:emp:%v", rl.scope, v)
	}
	return fmt.Sprintf("%s:ip:%s", rl.scope, c.ClientIP())
}
