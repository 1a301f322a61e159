package database

import (
	"fmt"

	"github.com/sems-dev/event-scheduling-api/internal/constants"
	"github.com/sems-dev/event-scheduling-api/internal/models"
	"gorm.io/gorm"
)

// seedDefaultAdmin creates the built-in administrator account. It runs
// only when the schema is (re)created, so the row is never duplicated on
// subsequent opens.
func seedDefaultAdmin(db *gorm.DB) error {
	admin := &models.User{
		Email:    constants.DefaultAdminEmail,
		Password: constants.DefaultAdminPassword,
		Name:     constants.DefaultAdminName,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin user: %w", err)
	}

	return nil
}
