package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter caps requests per IP, per method, per endpoint using redis
// counters. A nil client disables limiting (local runs without redis).
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		endpoint := c.FullPath()
		method := c.Request.Method

		key := "rl:" + ip + ":" + method + ":" + endpoint
		resetKey := key + ":resetAt"
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Message("Redis error"))
			c.Abort()
			return
		}

		// First request in the window sets expiry and a stable resetAt
		if count == 1 {
			client.Expire(ctx, key, window)
			resetAt := time.Now().Add(window)
			client.Set(ctx, resetKey, resetAt.Unix(), window)
		}

		resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set("rateLimiter", rate)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rate.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(rate.Remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(rate.ResetInSeconds))

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.Message("Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
