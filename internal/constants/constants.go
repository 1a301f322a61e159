package constants

// Session
const (
	SessionCookieName   = "sems_session"
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// Default administrator account created on first database initialization.
// The password is stored as-is unless PASSWORD_HASHING is enabled; see
// the auth service for the comparison rules.
const (
	DefaultAdminEmail    = "admin@sems.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "System Admin"
)

// Pagination and list limits
const (
	MinPageSize        = 1
	DefaultPageSize    = 20
	MaxPageSize        = 100
	DefaultRecentLimit = 5
	MaxRecentLimit     = 50
)

const MinPasswordLength = 6
