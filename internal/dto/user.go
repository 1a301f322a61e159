package dto

import "github.com/sems-dev/event-scheduling-api/internal/models"

// UserDTO represents a user in API responses. The password column is
// never exposed.
type UserDTO struct {
	ID          uint64 `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Department:  user.Department,
		Position:    user.Position,
		Role:        user.Role,
		IsActive:    user.IsActive,
	}
}

// ToUserDTOs converts a slice of User models.
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}
