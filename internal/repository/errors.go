package repository

import (
	"errors"
	"fmt"
)

// Error categories for write operations. Callers branch with errors.Is:
// ErrInvalid means the input was rejected before touching storage,
// ErrIntegrity means a relational constraint blocked the write, and
// anything wrapping ErrStorage means the store itself failed. Lookups for
// missing rows return gorm.ErrRecordNotFound unchanged.
var (
	ErrInvalid   = errors.New("validation failed")
	ErrIntegrity = errors.New("integrity violation")
	ErrStorage   = errors.New("storage failure")

	// ErrInvalidEvent is returned when an event fails Event.IsValid.
	ErrInvalidEvent = fmt.Errorf("%w: event rejected", ErrInvalid)
	// ErrOrganizerNotFound is returned when an event's organizer does not
	// resolve to an active user at insert time.
	ErrOrganizerNotFound = fmt.Errorf("%w: organizer not found or inactive", ErrIntegrity)
	// ErrDuplicateEmail is returned when a user write would reuse an
	// email already held by another row.
	ErrDuplicateEmail = fmt.Errorf("%w: email already exists", ErrIntegrity)
	// ErrLastActiveAdmin is returned when deleting a user would remove
	// the only remaining active administrator.
	ErrLastActiveAdmin = fmt.Errorf("%w: cannot delete the last active admin", ErrIntegrity)
)

func storageFault(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
