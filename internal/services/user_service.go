package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sems-dev/event-scheduling-api/internal/constants"
	"github.com/sems-dev/event-scheduling-api/internal/models"
	"github.com/sems-dev/event-scheduling-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken            = errors.New("email already exists")
	ErrMissingRequiredFields = errors.New("email, password and name are required")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrInvalidRole           = errors.New("role must be admin or user")
	ErrLastAdmin             = errors.New("cannot delete the last active admin")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
)

// UserService handles account management business logic.
type UserService struct {
	userRepo      repository.UserRepository
	hashPasswords bool
}

// NewUserService creates a new UserService. When hashPasswords is set,
// created accounts store bcrypt hashes instead of the raw password.
func NewUserService(userRepo repository.UserRepository, hashPasswords bool) *UserService {
	return &UserService{
		userRepo:      userRepo,
		hashPasswords: hashPasswords,
	}
}

// CreateUserInput represents the required information to create an account.
type CreateUserInput struct {
	Email       string
	Password    string
	Name        string
	PhoneNumber string
	Department  string
	Position    string
	Role        string
}

// CreateUser registers a new account. Email, password and name are
// required; the role defaults to user and the account starts active.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || input.Password == "" || name == "" {
		return nil, ErrMissingRequiredFields
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, ErrInvalidRole
	}

	password := input.Password
	if s.hashPasswords {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		password = string(hashed)
	}

	user := &models.User{
		Email:       email,
		Password:    password,
		Name:        name,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Department:  strings.TrimSpace(input.Department),
		Position:    strings.TrimSpace(input.Position),
		Role:        role,
		IsActive:    true,
	}

	if _, err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ListUsers returns every account, active or not, in row order.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListUsersPage returns one page of accounts plus the total count.
func (s *UserService) ListUsersPage(offset, limit int) ([]models.User, int64, error) {
	users, total, err := s.userRepo.ListPage(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// UpdateUserInput carries the full replacement record for an account.
// The stored password is never rewritten here.
type UpdateUserInput struct {
	Email       string
	Name        string
	PhoneNumber string
	Department  string
	Position    string
	Role        string
	IsActive    bool
}

// UpdateUser rewrites an account's columns (except password) and returns
// the updated record.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, ErrMissingRequiredFields
	}

	role := strings.TrimSpace(input.Role)
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, ErrInvalidRole
	}

	user := &models.User{
		ID:          id,
		Email:       email,
		Name:        name,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Department:  strings.TrimSpace(input.Department),
		Position:    strings.TrimSpace(input.Position),
		Role:        role,
		IsActive:    input.IsActive,
	}

	affected, err := s.userRepo.Update(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if affected == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetUser(id)
}

// DeleteUser removes an account. Deleting the only remaining active
// administrator is refused.
func (s *UserService) DeleteUser(id uint64) error {
	if err := s.userRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrUserNotFound
		case errors.Is(err, repository.ErrLastActiveAdmin):
			return ErrLastAdmin
		default:
			return fmt.Errorf("failed to delete user: %w", err)
		}
	}
	return nil
}
