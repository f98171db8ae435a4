// groop-admin/internal/middleware/token_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenMiddleware достаёт bearer-токен вызывающего из cookie или заголовка
// Authorization и кладёт его в контекст для проброса на платформу.
// Подлинность токена шлюз не проверяет: аутентификация целиком на стороне
// платформенного API, который ответит 401 на просроченный токен.
func TokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Authorization token not provided",
				})
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Invalid Authorization header format",
				})
				return
			}
			tokenStr = parts[1]
		}

		c.Set("platformToken", tokenStr)
		c.Next()
	}
}
