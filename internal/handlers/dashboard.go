package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sems-dev/event-scheduling-api/internal/dto"
	apierrors "github.com/sems-dev/event-scheduling-api/internal/errors"
	"github.com/sems-dev/event-scheduling-api/internal/middleware"
	"github.com/sems-dev/event-scheduling-api/internal/services"
)

// DashboardHandler serves the home-view summary.
type DashboardHandler struct {
	eventService *services.EventService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(eventService *services.EventService) *DashboardHandler {
	return &DashboardHandler{
		eventService: eventService,
	}
}

// GetDashboard returns the current user's statistics: their event
// totals, the user count, and their most recent events.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	stats, err := h.eventService.Dashboard(email)
	if err != nil {
		apierrors.InternalError(c, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.DashboardDTO{
		TotalEvents:    stats.TotalEvents,
		TotalUsers:     stats.TotalUsers,
		UpcomingEvents: stats.UpcomingEvents,
		RecentEvents:   dto.ToEventDTOs(stats.RecentEvents),
	})
}
