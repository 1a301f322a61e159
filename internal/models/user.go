package models

// User roles as stored in the role column.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account row. Construction performs no validation;
// required-field checks are the caller's responsibility.
//
// The password column holds whatever was written at creation time. By
// default that is the raw password (kept for parity with the data this
// service inherits); see services.AuthService for the comparison rules.
type User struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `gorm:"column:phone_number" json:"phone_number"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	Role        string `json:"role"`
	IsActive    bool   `gorm:"column:is_active" json:"is_active"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
