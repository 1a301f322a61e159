package repository

import (
	"errors"

	"github.com/sems-dev/event-scheduling-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a user after checking the email is not already taken.
func (r *GormUserRepository) Create(user *models.User) (uint64, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return storageFault("check email uniqueness", err)
		}
		if count > 0 {
			return ErrDuplicateEmail
		}

		if err := tx.Create(user).Error; err != nil {
			return storageFault("insert user", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// FindByID finds a user by id.
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, storageFault("find user by id", err)
	}
	return &user, nil
}

// FindByEmail finds a user by exact email.
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, storageFault("find user by email", err)
	}
	return &user, nil
}

// List returns every user in row order, with no is_active filter.
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, storageFault("list users", err)
	}
	return users, nil
}

// ListPage returns one page of users in row order plus the total count.
func (r *GormUserRepository) ListPage(offset, limit int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, storageFault("count users", err)
	}

	var users []models.User
	if err := r.db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, storageFault("list users page", err)
	}
	return users, total, nil
}

// Update rewrites the row keyed by user.ID. The password column is left
// untouched; a column map is used so false/empty values are written too.
func (r *GormUserRepository) Update(user *models.User) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ? AND id <> ?", user.Email, user.ID).
			Count(&count).Error; err != nil {
			return storageFault("check email uniqueness", err)
		}
		if count > 0 {
			return ErrDuplicateEmail
		}

		res := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
			"email":        user.Email,
			"name":         user.Name,
			"phone_number": user.PhoneNumber,
			"department":   user.Department,
			"position":     user.Position,
			"role":         user.Role,
			"is_active":    user.IsActive,
		})
		if res.Error != nil {
			return storageFault("update user", res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// Delete removes a user unless it is the only remaining active admin.
// The guard and the delete run in one transaction so a concurrent
// deactivation cannot slip past the count.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return storageFault("find user by id", err)
		}

		if user.IsAdmin() && user.IsActive {
			var admins int64
			if err := tx.Model(&models.User{}).
				Where("role = ? AND is_active = ?", models.RoleAdmin, true).
				Count(&admins).Error; err != nil {
				return storageFault("count active admins", err)
			}
			if admins <= 1 {
				return ErrLastActiveAdmin
			}
		}

		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return storageFault("delete user", err)
		}
		return nil
	})
}

// CheckCredentials matches the stored email and password columns exactly
// and requires the row to be active. Deactivating a user flips the result
// to false without deleting anything.
func (r *GormUserRepository) CheckCredentials(email, password string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("email = ? AND password = ? AND is_active = ?", email, password, true).
		Count(&count).Error; err != nil {
		return false, storageFault("check credentials", err)
	}
	return count > 0, nil
}

// Count returns the total number of user rows.
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, storageFault("count users", err)
	}
	return count, nil
}
