package ratelimit

import (
	"fmt"
	"net/http"

	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP. A limiter failure lets the request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		clientIP := observability.GetRealClientIP(c)
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "client_ip", Value: clientIP},
			observability.Field{Key: "rate_limit_rpm", Value: s.limit},
		)

		result, err := s.Check(ctx, c.FullPath()+"|"+clientIP)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.logger.Warn(ctx, "rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":        "Rate limit exceeded",
				"code":         "RATE_LIMIT_EXCEEDED",
				"retry_after":  retryAfter,
				"notification": notify.Error("Too many attempts. Please wait a minute and try again."),
			})
			return
		}

		c.Next()
	}
}
