package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yamakawa/task-tracker-api/internal/auth"
	"github.com/yamakawa/task-tracker-api/internal/constants"
	apierrors "github.com/yamakawa/task-tracker-api/internal/errors"
)

// RequireAuth verifies the bearer token on every protected request and
// attaches the user ID to the context. This is the single enforcement
// point for per-user isolation; downstream handlers trust the context
// value without re-verifying.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Access denied. No token provided.")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			apierrors.Unauthorized(c, "Access denied.")
			c.Abort()
			return
		}

		userID, err := auth.GetUserIDFromToken(token, secret)
		if err != nil {
			apierrors.InvalidToken(c)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
