package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/sems-dev/event-scheduling-api/internal/errors"
	"github.com/sems-dev/event-scheduling-api/internal/services"
)

// RequireAdmin ensures the session user is an active administrator.
func RequireAdmin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := authService.GetUser(userID)
		if err != nil {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		if !user.IsAdmin() || !user.IsActive {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelfOrAdmin allows a user through for their own :id, and
// active administrators for any id.
func RequireSelfOrAdmin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		if userID == targetID {
			c.Next()
			return
		}

		user, err := authService.GetUser(userID)
		if err != nil || !user.IsAdmin() || !user.IsActive {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
