package repository

import (
	"errors"
	"time"

	"github.com/sems-dev/event-scheduling-api/internal/models"
	"github.com/sems-dev/event-scheduling-api/internal/utils"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

// Create runs the validate / organizer-check / insert sequence inside a
// single transaction. The organizer-active read and the insert share the
// transaction, so a concurrent deactivation cannot race past the check,
// and a failure at any step leaves the events table untouched.
func (r *GormEventRepository) Create(event *models.Event) (uint64, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if !event.IsValid() {
			return ErrInvalidEvent
		}

		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ? AND is_active = ?", event.Organizer, true).
			Count(&count).Error; err != nil {
			return storageFault("check organizer", err)
		}
		if count == 0 {
			return ErrOrganizerNotFound
		}

		if err := tx.Create(event).Error; err != nil {
			return storageFault("insert event", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return event.ID, nil
}

// FindByID finds an event by id.
func (r *GormEventRepository) FindByID(id uint64) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, storageFault("find event by id", err)
	}
	return &event, nil
}

// List returns every event, active or not, by ascending start date.
func (r *GormEventRepository) List() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("start_date ASC").Find(&events).Error; err != nil {
		return nil, storageFault("list events", err)
	}
	return events, nil
}

// ListByDate returns events starting within the local day containing day.
func (r *GormEventRepository) ListByDate(day time.Time) ([]models.Event, error) {
	start, end := utils.DayRange(day)

	var events []models.Event
	if err := r.db.
		Where("start_date >= ? AND start_date < ?", start.UnixMilli(), end.UnixMilli()).
		Order("start_date ASC").
		Find(&events).Error; err != nil {
		return nil, storageFault("list events by date", err)
	}
	return events, nil
}

// ListUpcoming returns active events starting at or after from. This is
// the one listing query that honors is_active.
func (r *GormEventRepository) ListUpcoming(from time.Time) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.
		Where("start_date >= ? AND is_active = ?", from.UnixMilli(), true).
		Order("start_date ASC").
		Find(&events).Error; err != nil {
		return nil, storageFault("list upcoming events", err)
	}
	return events, nil
}

// ListByOrganizer returns the organizer's events by ascending start date.
func (r *GormEventRepository) ListByOrganizer(email string) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.
		Where("organizer = ?", email).
		Order("start_date ASC").
		Find(&events).Error; err != nil {
		return nil, storageFault("list events by organizer", err)
	}
	return events, nil
}

// ListRecent returns up to limit events, most recent start date first.
func (r *GormEventRepository) ListRecent(limit int) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.
		Order("start_date DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, storageFault("list recent events", err)
	}
	return events, nil
}

// ListRecentByOrganizer is ListRecent scoped to one organizer.
func (r *GormEventRepository) ListRecentByOrganizer(email string, limit int) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.
		Where("organizer = ?", email).
		Order("start_date DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, storageFault("list recent events by organizer", err)
	}
	return events, nil
}

// CountForDate counts events starting within the local day containing day.
func (r *GormEventRepository) CountForDate(day time.Time) (int64, error) {
	start, end := utils.DayRange(day)

	var count int64
	if err := r.db.Model(&models.Event{}).
		Where("start_date >= ? AND start_date < ?", start.UnixMilli(), end.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, storageFault("count events for date", err)
	}
	return count, nil
}

// Count returns the total number of event rows.
func (r *GormEventRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return 0, storageFault("count events", err)
	}
	return count, nil
}

// CountByOrganizer counts the organizer's events.
func (r *GormEventRepository) CountByOrganizer(email string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Event{}).
		Where("organizer = ?", email).
		Count(&count).Error; err != nil {
		return 0, storageFault("count events by organizer", err)
	}
	return count, nil
}

// CountUpcoming counts events starting at or after from. Unlike
// ListUpcoming it does not filter on is_active; the asymmetry is part of
// the contract.
func (r *GormEventRepository) CountUpcoming(from time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Event{}).
		Where("start_date >= ?", from.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, storageFault("count upcoming events", err)
	}
	return count, nil
}

// CountUpcomingByOrganizer is CountUpcoming scoped to one organizer.
func (r *GormEventRepository) CountUpcomingByOrganizer(email string, from time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Event{}).
		Where("organizer = ? AND start_date >= ?", email, from.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, storageFault("count upcoming events by organizer", err)
	}
	return count, nil
}

// Update rewrites the row keyed by event.ID and reports affected rows.
// A column map is used so false is_active values are written too.
func (r *GormEventRepository) Update(event *models.Event) (int64, error) {
	res := r.db.Model(&models.Event{}).Where("id = ?", event.ID).Updates(map[string]any{
		"title":       event.Title,
		"description": event.Description,
		"start_date":  event.StartDate,
		"end_date":    event.EndDate,
		"location":    event.Location,
		"organizer":   event.Organizer,
		"is_active":   event.IsActive,
	})
	if res.Error != nil {
		return 0, storageFault("update event", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes an event by id with no cascading effects.
func (r *GormEventRepository) Delete(id uint64) error {
	res := r.db.Delete(&models.Event{}, id)
	if res.Error != nil {
		return storageFault("delete event", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
