package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// Лимитер при недоступном redis пропускает запросы, а не роняет их
func TestRateLimiterFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1", // никто не слушает
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})

	r := gin.New()
	r.GET("/ping", NewRateLimiter(rdb).Limit("ping", 1, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
