package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"turisflow/internal/services"
)

const userIDKey = "user_id"

// Auth validates the bearer token on protected routes. With an empty secret
// the middleware passes through, which keeps local setups without
// credentials working.
func Auth(secret string) gin.HandlerFunc {
	svc := services.AuthService{Secret: secret}
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" || raw == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "token ausente",
				"code":  "unauthorized",
			})
			return
		}
		id, err := svc.ParseToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "token inválido ou expirado",
				"code":  "unauthorized",
			})
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// GetUserID returns the authenticated user id, 0 when anonymous.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
