package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sems-dev/event-scheduling-api/internal/constants"
	"github.com/sems-dev/event-scheduling-api/internal/models"
	"github.com/sems-dev/event-scheduling-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventInvalid      = errors.New("event failed validation")
	ErrOrganizerNotFound = errors.New("organizer not found or inactive")
)

// EventService handles event business logic.
type EventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// CreateEventInput represents input for creating an event. Missing dates
// default to the current instant (permissive construction).
type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Organizer   string
	StartDate   *time.Time
	EndDate     *time.Time
}

// CreateEvent normalizes the input and hands it to the store, which
// validates, verifies the organizer and inserts atomically.
func (s *EventService) CreateEvent(input CreateEventInput) (*models.Event, error) {
	event := models.NewEvent(input.Title, input.Description, input.Location, input.Organizer,
		input.StartDate, input.EndDate, true)

	if _, err := s.eventRepo.Create(event); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidEvent):
			return nil, ErrEventInvalid
		case errors.Is(err, repository.ErrOrganizerNotFound):
			return nil, ErrOrganizerNotFound
		default:
			return nil, fmt.Errorf("failed to create event: %w", err)
		}
	}

	return event, nil
}

// GetEvent retrieves an event by ID.
func (s *EventService) GetEvent(id uint64) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	return event, nil
}

// ListEventsInput represents filters for listing events. At most one of
// Date, Upcoming and Organizer applies, checked in that order.
type ListEventsInput struct {
	Date      *time.Time
	Upcoming  bool
	Organizer string
}

// ListEvents returns events for the given filter, ascending by start date.
func (s *EventService) ListEvents(input ListEventsInput) ([]models.Event, error) {
	var (
		events []models.Event
		err    error
	)

	switch {
	case input.Date != nil:
		events, err = s.eventRepo.ListByDate(*input.Date)
	case input.Upcoming:
		events, err = s.eventRepo.ListUpcoming(time.Now())
	case input.Organizer != "":
		events, err = s.eventRepo.ListByOrganizer(input.Organizer)
	default:
		events, err = s.eventRepo.List()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// RecentEvents returns up to limit events by descending start date,
// scoped to an organizer when one is given. The limit is clamped to the
// configured bounds.
func (s *EventService) RecentEvents(organizer string, limit int) ([]models.Event, error) {
	if limit < 1 || limit > constants.MaxRecentLimit {
		limit = constants.DefaultRecentLimit
	}

	var (
		events []models.Event
		err    error
	)
	if organizer != "" {
		events, err = s.eventRepo.ListRecentByOrganizer(organizer, limit)
	} else {
		events, err = s.eventRepo.ListRecent(limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list recent events: %w", err)
	}

	return events, nil
}

// UpdateEventInput carries the full replacement record for an event.
type UpdateEventInput struct {
	Title       string
	Description string
	Location    string
	Organizer   string
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    bool
}

// UpdateEvent rewrites an event's columns and returns the updated record.
// Mirroring the store contract, no re-validation happens on update.
func (s *EventService) UpdateEvent(id uint64, input UpdateEventInput) (*models.Event, error) {
	event := models.NewEvent(input.Title, input.Description, input.Location, input.Organizer,
		input.StartDate, input.EndDate, input.IsActive)
	event.ID = id

	affected, err := s.eventRepo.Update(event)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if affected == 0 {
		return nil, ErrEventNotFound
	}

	return s.GetEvent(id)
}

// DeleteEvent removes an event by id.
func (s *EventService) DeleteEvent(id uint64) error {
	if err := s.eventRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// DashboardStats is the home-view summary for one organizer.
type DashboardStats struct {
	TotalEvents    int64
	TotalUsers     int64
	UpcomingEvents int64
	RecentEvents   []models.Event
}

// Dashboard assembles the per-organizer statistics: total and upcoming
// event counts for the organizer, the user total, and the organizer's
// most recent events.
func (s *EventService) Dashboard(organizer string) (*DashboardStats, error) {
	totalEvents, err := s.eventRepo.CountByOrganizer(organizer)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	upcoming, err := s.eventRepo.CountUpcomingByOrganizer(organizer, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming events: %w", err)
	}

	recent, err := s.eventRepo.ListRecentByOrganizer(organizer, constants.DefaultRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent events: %w", err)
	}

	return &DashboardStats{
		TotalEvents:    totalEvents,
		TotalUsers:     totalUsers,
		UpcomingEvents: upcoming,
		RecentEvents:   recent,
	}, nil
}

// MonthEventCounts returns the per-day event counts for a month, indexed
// from day 1. Backs the calendar month grid.
func (s *EventService) MonthEventCounts(year int, month time.Month) ([]int64, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	var counts []int64
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		count, err := s.eventRepo.CountForDate(day)
		if err != nil {
			return nil, fmt.Errorf("failed to count events for %s: %w", day.Format("2006-01-02"), err)
		}
		counts = append(counts, count)
	}

	return counts, nil
}
