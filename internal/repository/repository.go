package repository

import (
	"time"

	"github.com/sems-dev/event-scheduling-api/internal/models"
)

// UserRepository defines the interface for user data access.
//
// Active-flag behavior is deliberately uneven and part of the contract:
// List and the Find* lookups return rows regardless of is_active; only
// CheckCredentials filters on it.
type UserRepository interface {
	// Create inserts a user and returns the new id. The email must not be
	// in use (ErrDuplicateEmail). No required-field validation happens
	// here; that is the caller's job.
	Create(user *models.User) (uint64, error)

	// FindByID finds a user by id.
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by exact (case-sensitive) email.
	FindByEmail(email string) (*models.User, error)

	// List returns all users in row order, active or not.
	List() ([]models.User, error)

	// ListPage returns one page of users in row order plus the total row
	// count, for paginated listings.
	ListPage(offset, limit int) ([]models.User, int64, error)

	// Update rewrites every column except password for the row keyed by
	// user.ID and returns the affected-row count; 0 means no such id.
	// Moving to an email held by another user fails with
	// ErrDuplicateEmail.
	Update(user *models.User) (int64, error)

	// Delete removes a user by id. Deleting the only remaining active
	// administrator fails with ErrLastActiveAdmin.
	Delete(id uint64) error

	// CheckCredentials reports whether an active user exists whose stored
	// email and password columns exactly match the arguments.
	CheckCredentials(email, password string) (bool, error)

	// Count returns the total number of user rows, active or not.
	Count() (int64, error)
}

// EventRepository defines the interface for event data access.
//
// All listing queries order by start date ascending except the Recent
// variants, which order descending and are bounded by their limit. Only
// ListUpcoming filters on is_active; every other query returns rows
// regardless of the flag.
type EventRepository interface {
	// Create validates the event, verifies the organizer resolves to an
	// active user, and inserts — all inside one transaction, so a failure
	// at any step leaves no partial state. Returns the new id, or
	// ErrInvalidEvent / ErrOrganizerNotFound.
	Create(event *models.Event) (uint64, error)

	// FindByID finds an event by id.
	FindByID(id uint64) (*models.Event, error)

	// List returns all events ordered by start date ascending.
	List() ([]models.Event, error)

	// ListByDate returns events starting within the local calendar day
	// containing day (midnight to midnight).
	ListByDate(day time.Time) ([]models.Event, error)

	// ListUpcoming returns active events starting at or after from.
	ListUpcoming(from time.Time) ([]models.Event, error)

	// ListByOrganizer returns the organizer's events, start date ascending.
	ListByOrganizer(email string) ([]models.Event, error)

	// ListRecent returns up to limit events, most recent start date first.
	ListRecent(limit int) ([]models.Event, error)

	// ListRecentByOrganizer is ListRecent scoped to one organizer.
	ListRecentByOrganizer(email string, limit int) ([]models.Event, error)

	// CountForDate counts events starting within the local calendar day.
	CountForDate(day time.Time) (int64, error)

	// Count returns the total number of event rows.
	Count() (int64, error)

	// CountByOrganizer counts the organizer's events.
	CountByOrganizer(email string) (int64, error)

	// CountUpcoming counts events starting at or after from, regardless
	// of is_active.
	CountUpcoming(from time.Time) (int64, error)

	// CountUpcomingByOrganizer is CountUpcoming scoped to one organizer.
	CountUpcomingByOrganizer(email string, from time.Time) (int64, error)

	// Update rewrites every column for the row keyed by event.ID and
	// returns the affected-row count; 0 means no such id.
	Update(event *models.Event) (int64, error)

	// Delete removes an event by id with no cascading effects.
	Delete(id uint64) error
}
