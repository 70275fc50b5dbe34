package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/shamsy/home-services-api/internal/httpresp"
	"github.com/shamsy/home-services-api/internal/logger"
)

// RateLimit caps requests per client IP on a route. Fail-open: when redis
// is absent or unreachable, traffic passes.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, keyPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rl:" + keyPrefix + ":ip:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.GetLogger().WithError(err).Debug("rate limiter unavailable")
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httpresp.Envelope{
				Status:  false,
				Message: "Too many requests. Try again later.",
				Data:    nil,
			})
			return
		}

		c.Next()
	}
}
