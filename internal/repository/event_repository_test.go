package repository

import (
	"testing"
	"time"

	"github.com/sems-dev/event-scheduling-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrganizer(t *testing.T, repo UserRepository, email string, active bool) {
	t.Helper()
	_, err := repo.Create(makeUser(email, models.RoleUser, active))
	require.NoError(t, err)
}

func eventAt(organizer string, start time.Time) *models.Event {
	end := start.Add(time.Hour)
	return models.NewEvent("Town Hall", "Quarterly meeting", "HQ", organizer, &start, &end, true)
}

func TestEventRepository_Create(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	seedOrganizer(t, users, "alice@sems.com", true)

	event := eventAt("alice@sems.com", time.Now())
	id, err := events.Create(event)
	require.NoError(t, err)
	require.Greater(t, id, uint64(0))

	listed, err := events.List()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, id, listed[0].ID)
	require.Equal(t, event.StartDate, listed[0].StartDate)
}

func TestEventRepository_Create_Invalid(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	seedOrganizer(t, users, "alice@sems.com", true)

	start := time.Now()
	end := start.Add(-time.Hour)
	event := models.NewEvent("Town Hall", "Quarterly meeting", "HQ", "alice@sems.com", &start, &end, true)

	_, err := events.Create(event)
	require.ErrorIs(t, err, ErrInvalidEvent)
	require.ErrorIs(t, err, ErrInvalid)

	count, err := events.Count()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestEventRepository_Create_OrganizerMissing(t *testing.T) {
	db := newTestDB(t)
	events := NewEventRepository(db)

	_, err := events.Create(eventAt("ghost@sems.com", time.Now()))
	require.ErrorIs(t, err, ErrOrganizerNotFound)
	require.ErrorIs(t, err, ErrIntegrity)

	count, err := events.Count()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestEventRepository_Create_OrganizerInactive(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	seedOrganizer(t, users, "dormant@sems.com", false)

	_, err := events.Create(eventAt("dormant@sems.com", time.Now()))
	require.ErrorIs(t, err, ErrOrganizerNotFound)

	count, err := events.Count()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestEventRepository_ListByDate_DayWindow(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	seedOrganizer(t, users, "alice@sems.com", true)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	inWindow := []time.Time{
		day,
		day.Add(12 * time.Hour),
		day.Add(24*time.Hour - time.Millisecond),
	}
	outOfWindow := []time.Time{
		day.Add(-time.Millisecond),
		day.Add(24 * time.Hour),
	}

	for _, start := range append(inWindow, outOfWindow...) {
		_, err := events.Create(eventAt("alice@sems.com", start))
		require.NoError(t, err)
	}

	listed, err := events.ListByDate(day.Add(15 * time.Hour))
	require.NoError(t, err)
	require.Len(t, listed, len(inWindow))
	for i := 1; i < len(listed); i++ {
		require.LessOrEqual(t, listed[i-1].StartDate, listed[i].StartDate)
	}

	count, err := events.CountForDate(day)
	require.NoError(t, err)
	require.Equal(t, int64(len(inWindow)), count)
}

func TestEventRepository_UpcomingActiveAsymmetry(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	seedOrganizer(t, users, "alice@sems.com", true)

	now := time.Now()

	_, err := events.Create(eventAt("alice@sems.com", now.Add(-48*time.Hour)))
	require.NoError(t, err)
	activeID, err := events.Create(eventAt("alice@sems.com", now.Add(24*time.Hour)))
	require.NoError(t, err)
	inactiveID, err := events.Create(eventAt("alice@sems.com", now.Add(48*time.Hour)))
	require.NoError(t, err)

	// Deactivate one future event after creation.
	inactive, err := events.FindByID(inactiveID)
	require.NoError(t, err)
	inactive.IsActive = false
	affected, err := events.Update(inactive)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	upcoming, err := events.ListUpcoming(now)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	require.Equal(t, activeID, upcoming[0].ID)

	// The count deliberately ignores is_active.
	count, err := events.CountUpcoming(now)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	byOrganizer, err := events.CountUpcomingByOrganizer("alice@sems.com", now)
	require.NoError(t, err)
	require.Equal(t, int64(2), byOrganizer)
}

func TestEventRepository_RecentOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	seedOrganizer(t, users, "alice@sems.com", true)
	seedOrganizer(t, users, "bob@sems.com", true)

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	for i := 0; i < 4; i++ {
		_, err := events.Create(eventAt("alice@sems.com", base.AddDate(0, 0, i)))
		require.NoError(t, err)
	}
	_, err := events.Create(eventAt("bob@sems.com", base.AddDate(0, 0, 10)))
	require.NoError(t, err)

	recent, err := events.ListRecent(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	for i := 1; i < len(recent); i++ {
		require.GreaterOrEqual(t, recent[i-1].StartDate, recent[i].StartDate)
	}
	require.Equal(t, "bob@sems.com", recent[0].Organizer)

	scoped, err := events.ListRecentByOrganizer("alice@sems.com", 2)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	require.Equal(t, base.AddDate(0, 0, 3).UnixMilli(), scoped[0].StartDate)
}

func TestEventRepository_ListByOrganizerAndCounts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	seedOrganizer(t, users, "alice@sems.com", true)
	seedOrganizer(t, users, "bob@sems.com", true)

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	_, err := events.Create(eventAt("alice@sems.com", base))
	require.NoError(t, err)
	_, err = events.Create(eventAt("alice@sems.com", base.AddDate(0, 0, 1)))
	require.NoError(t, err)
	_, err = events.Create(eventAt("bob@sems.com", base))
	require.NoError(t, err)

	mine, err := events.ListByOrganizer("alice@sems.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	count, err := events.CountByOrganizer("alice@sems.com")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	total, err := events.Count()
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
}

func TestEventRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	seedOrganizer(t, users, "alice@sems.com", true)

	id, err := events.Create(eventAt("alice@sems.com", time.Now()))
	require.NoError(t, err)

	event, err := events.FindByID(id)
	require.NoError(t, err)
	event.Title = "Rescheduled Town Hall"
	event.IsActive = false

	affected, err := events.Update(event)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	updated, err := events.FindByID(id)
	require.NoError(t, err)
	require.Equal(t, "Rescheduled Town Hall", updated.Title)
	require.False(t, updated.IsActive)

	require.NoError(t, events.Delete(id))
	require.ErrorIs(t, events.Delete(id), gorm.ErrRecordNotFound)

	_, err = events.FindByID(id)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
