package middleware

import (
	"strings"

	"github.com/pixperk/pocketmind-server/internal/config"
	"github.com/pixperk/pocketmind-server/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextClaimsKey = "claims"
)

// AuthMiddleware is the sole authorization gate for protected routes. It
// requires a "Bearer <token>" Authorization header and a verifiable,
// unexpired token; the decoded user id is placed in the request context for
// handlers. Why verification failed is never surfaced to the caller.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			utils.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token, cfg.JWT.Secret)
		if err != nil {
			utils.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// UserID returns the authenticated caller's id injected by AuthMiddleware.
func UserID(c *gin.Context) string {
	id, _ := c.Get(ContextUserIDKey)
	userID, _ := id.(string)
	return userID
}
