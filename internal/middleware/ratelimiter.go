package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter — фиксированное окно на redis INCR/EXPIRE, счетчик
// на пару (scope, client ip)
type RateLimiter struct {
	rdb *redis.Client
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb}
}

func (rl *RateLimiter) Limit(scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())

		count, err := rl.rdb.Incr(c, key).Result()
		if err != nil {
			// Недоступный redis не должен ронять запросы
			c.Next()
			return
		}
		if count == 1 {
			rl.rdb.Expire(c, key, window)
		}

		if count > int64(limit) {
			ttl, _ := rl.rdb.TTL(c, key).Result()
			if ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
