package models

import (
	"strings"
	"time"
)

// Event represents a scheduled event row. Dates are persisted as epoch
// milliseconds; the organizer column references users.email.
type Event struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	StartDate   int64  `gorm:"column:start_date;not null" json:"start_date"`
	EndDate     int64  `gorm:"column:end_date;not null" json:"end_date"`
	Location    string `gorm:"not null" json:"location"`
	Organizer   string `gorm:"not null" json:"organizer"`
	IsActive    bool   `gorm:"column:is_active;not null;default:1" json:"is_active"`

	OrganizerUser *User `gorm:"foreignKey:Organizer;references:Email" json:"-"`
}

// NewEvent builds an event from raw input. String fields are trimmed with
// nil-equivalent input collapsing to ""; a missing start or end date
// defaults to the current instant. Nothing is rejected here — IsValid is
// the single gate before persistence.
func NewEvent(title, description, location, organizer string, start, end *time.Time, active bool) *Event {
	now := time.Now()
	startAt := now
	if start != nil {
		startAt = *start
	}
	endAt := now
	if end != nil {
		endAt = *end
	}

	return &Event{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		StartDate:   startAt.UnixMilli(),
		EndDate:     endAt.UnixMilli(),
		Location:    strings.TrimSpace(location),
		Organizer:   strings.TrimSpace(organizer),
		IsActive:    active,
	}
}

// IsValid reports whether the event can be persisted. It returns false
// when any of title, description, location or organizer is empty after
// trimming, when either date is unset, or when the end date precedes the
// start date. It never panics.
func (e *Event) IsValid() bool {
	if strings.TrimSpace(e.Title) == "" {
		return false
	}
	if strings.TrimSpace(e.Description) == "" {
		return false
	}
	if strings.TrimSpace(e.Location) == "" {
		return false
	}
	if strings.TrimSpace(e.Organizer) == "" {
		return false
	}
	if e.StartDate == 0 || e.EndDate == 0 {
		return false
	}
	if e.EndDate < e.StartDate {
		return false
	}
	return true
}

// StartTime returns the start date as a time.Time.
func (e *Event) StartTime() time.Time {
	return time.UnixMilli(e.StartDate)
}

// EndTime returns the end date as a time.Time.
func (e *Event) EndTime() time.Time {
	return time.UnixMilli(e.EndDate)
}
