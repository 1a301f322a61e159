package dto

import (
	"time"

	"github.com/sems-dev/event-scheduling-api/internal/models"
)

// EventDTO represents an event in API responses. Dates are rendered as
// RFC 3339 timestamps; storage keeps them as epoch milliseconds.
type EventDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	IsActive    bool      `json:"is_active"`
}

// ToEventDTO converts an Event model to EventDTO
func ToEventDTO(event models.Event) EventDTO {
	return EventDTO{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		StartDate:   event.StartTime(),
		EndDate:     event.EndTime(),
		Location:    event.Location,
		Organizer:   event.Organizer,
		IsActive:    event.IsActive,
	}
}

// ToEventDTOs converts a slice of Event models.
func ToEventDTOs(events []models.Event) []EventDTO {
	items := make([]EventDTO, len(events))
	for i, event := range events {
		items[i] = ToEventDTO(event)
	}
	return items
}

// DashboardDTO is the home-view summary for the current user.
type DashboardDTO struct {
	TotalEvents    int64      `json:"total_events"`
	TotalUsers     int64      `json:"total_users"`
	UpcomingEvents int64      `json:"upcoming_events"`
	RecentEvents   []EventDTO `json:"recent_events"`
}

// MonthCountsDTO carries per-day event counts for one month; Counts is
// indexed from day 1.
type MonthCountsDTO struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Counts []int64 `json:"counts"`
}
