package middleware

import (
	"net/http"
	"strconv"

	"ai-tools-api/internal/redis"
	"ai-tools-api/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware applies the per-IP API window to everything under /api,
// plus the tighter auth window on credential endpoints.
func RateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		result, err := limiter.AllowAPI(c.Request.Context(), clientIP)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewMessageResponse("Server error"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewMessageResponse("Too many requests from this IP, please try again later."))
			c.Abort()
			return
		}

		if isAuthEndpoint(c.Request.URL.Path) {
			result, err := limiter.AllowAuth(c.Request.Context(), clientIP)
			if err != nil {
				c.JSON(http.StatusInternalServerError, httpdto.NewMessageResponse("Server error"))
				c.Abort()
				return
			}

			setRateLimitHeaders(c, result)

			if !result.Allowed {
				c.JSON(http.StatusTooManyRequests, httpdto.NewMessageResponse("Too many requests from this IP, please try again later."))
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}

// isAuthEndpoint checks if the request path is a credential endpoint
func isAuthEndpoint(path string) bool {
	authPaths := []string{
		"/api/auth/register",
		"/api/auth/login",
	}
	for _, p := range authPaths {
		if path == p {
			return true
		}
	}
	return false
}
