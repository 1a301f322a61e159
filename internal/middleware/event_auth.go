package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/sems-dev/event-scheduling-api/internal/errors"
	"github.com/sems-dev/event-scheduling-api/internal/models"
	"github.com/sems-dev/event-scheduling-api/internal/services"
)

// RequireEventAccess loads the event named by the :id parameter into the
// context. Any authenticated user may view an event.
func RequireEventAccess(eventService *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid event ID")
			c.Abort()
			return
		}

		event, err := eventService.GetEvent(eventID)
		if err != nil {
			apierrors.NotFound(c, "Event not found")
			c.Abort()
			return
		}

		c.Set("event", event)
		c.Next()
	}
}

// RequireEventOwner restricts modification to the event's organizer or
// an active administrator. Must run after RequireEventAccess.
func RequireEventOwner(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := GetEvent(c)
		if !ok {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := authService.GetUser(userID)
		if err != nil {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}
		if user.Email != event.Organizer && !(user.IsAdmin() && user.IsActive) {
			apierrors.Forbidden(c, "Only the organizer or an admin can modify this event")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetEvent retrieves the event loaded by RequireEventAccess.
func GetEvent(c *gin.Context) (*models.Event, bool) {
	value, exists := c.Get("event")
	if !exists {
		return nil, false
	}

	event, ok := value.(*models.Event)
	return event, ok
}
