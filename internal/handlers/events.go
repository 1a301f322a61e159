package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sems-dev/event-scheduling-api/internal/constants"
	"github.com/sems-dev/event-scheduling-api/internal/dto"
	apierrors "github.com/sems-dev/event-scheduling-api/internal/errors"
	"github.com/sems-dev/event-scheduling-api/internal/middleware"
	"github.com/sems-dev/event-scheduling-api/internal/services"
	"github.com/sems-dev/event-scheduling-api/internal/utils"
)

// EventHandler coordinates event HTTP handlers.
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEvents returns events, optionally filtered.
// Supported query parameters: date=YYYY-MM-DD, upcoming=true,
// organizer=<email>, mine=true. The first matching filter wins.
func (h *EventHandler) ListEvents(c *gin.Context) {
	var input services.ListEventsInput

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = &day
	}
	input.Upcoming = c.Query("upcoming") == "true"
	input.Organizer = c.Query("organizer")
	if c.Query("mine") == "true" {
		email, exists := middleware.GetUserEmail(c)
		if !exists {
			apierrors.Unauthorized(c, "Not authenticated")
			return
		}
		input.Organizer = email
	}

	events, err := h.eventService.ListEvents(input)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": dto.ToEventDTOs(events),
	})
}

// CreateEvent creates a new event. The organizer defaults to the
// session user when the request leaves it empty.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	type CreateEventRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description" binding:"required"`
		Location    string     `json:"location" binding:"required"`
		Organizer   string     `json:"organizer"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	organizer := req.Organizer
	if organizer == "" {
		email, exists := middleware.GetUserEmail(c)
		if !exists {
			apierrors.Unauthorized(c, "Not authenticated")
			return
		}
		organizer = email
	}

	event, err := h.eventService.CreateEvent(services.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Organizer:   organizer,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDTO(*event))
}

// GetEvent returns the event loaded by RequireEventAccess.
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event))
}

// UpdateEvent rewrites an event's columns.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	type UpdateEventRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description" binding:"required"`
		Location    string     `json:"location" binding:"required"`
		Organizer   string     `json:"organizer" binding:"required"`
		StartDate   *time.Time `json:"start_date" binding:"required"`
		EndDate     *time.Time `json:"end_date" binding:"required"`
		IsActive    bool       `json:"is_active"`
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.eventService.UpdateEvent(event.ID, services.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Organizer:   req.Organizer,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*updated))
}

// DeleteEvent removes an event.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	if err := h.eventService.DeleteEvent(event.ID); err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
	})
}

// RecentEvents returns the most recently scheduled events, newest
// first. Accepts limit= and mine=true.
func (h *EventHandler) RecentEvents(c *gin.Context) {
	limit := utils.GetLimitParam(c, constants.DefaultRecentLimit, constants.MaxRecentLimit)

	var organizer string
	if c.Query("mine") == "true" {
		email, exists := middleware.GetUserEmail(c)
		if !exists {
			apierrors.Unauthorized(c, "Not authenticated")
			return
		}
		organizer = email
	}

	events, err := h.eventService.RecentEvents(organizer, limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": dto.ToEventDTOs(events),
	})
}

// MonthCounts returns per-day event counts for a calendar month.
func (h *EventHandler) MonthCounts(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		apierrors.BadRequest(c, "Invalid year")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		apierrors.BadRequest(c, "Invalid month")
		return
	}

	counts, err := h.eventService.MonthEventCounts(year, time.Month(month))
	if err != nil {
		apierrors.InternalError(c, "Failed to count events")
		return
	}

	c.JSON(http.StatusOK, dto.MonthCountsDTO{
		Year:   year,
		Month:  month,
		Counts: counts,
	})
}

func respondEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEventInvalid):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrganizerNotFound):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEventNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
