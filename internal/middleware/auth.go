package middleware

import (
	"net/http"
	"strings"

	"github.com/waste3d/artemis-marketplace/internal/infrastructure/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware валидирует Bearer-токен и кладет идентичность
// вызывающего в контекст под ключом "callerId"
func AuthMiddleware(tokenManager *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		accountID, err := tokenManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("callerId", accountID)
		c.Next()
	}
}
