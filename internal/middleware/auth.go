package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sems-dev/event-scheduling-api/internal/constants"
	apierrors "github.com/sems-dev/event-scheduling-api/internal/errors"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)
		userEmail := session.Get(constants.ContextKeyUserEmail)

		if userID == nil || userEmail == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserEmail, userEmail)
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

// GetUserEmail retrieves the current user's email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	userEmail, exists := c.Get(constants.ContextKeyUserEmail)
	if !exists {
		return "", false
	}

	email, ok := userEmail.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
