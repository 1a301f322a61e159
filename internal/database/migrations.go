package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/sems-dev/event-scheduling-api/internal/models"
	"gorm.io/gorm"
)

// SchemaVersion is the current schema generation. An on-disk database
// recorded with a different version is wiped and rebuilt from scratch —
// there is no data migration between generations.
const SchemaVersion = 2

type schemaVersion struct {
	ID      uint64 `gorm:"primaryKey"`
	Version int
}

func (schemaVersion) TableName() string {
	return "schema_version"
}

// Migrate brings the database to the current schema. On first
// initialization it creates the users and events tables and seeds the
// default administrator; a seeding failure is returned as fatal. On a
// version change it drops both tables and recreates them (wipe and
// reseed is the documented upgrade contract).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaVersion{}); err != nil {
		return fmt.Errorf("failed to prepare schema_version table: %w", err)
	}

	var recorded schemaVersion
	err := db.First(&recorded).Error
	fresh := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !fresh {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if !fresh && recorded.Version == SchemaVersion {
		log.Println("Database schema up to date")
		return nil
	}

	if !fresh {
		log.Printf("Upgrading database schema from version %d to %d (destructive)", recorded.Version, SchemaVersion)
		if err := db.Migrator().DropTable(&models.Event{}, &models.User{}); err != nil {
			return fmt.Errorf("failed to drop tables for upgrade: %w", err)
		}
	} else {
		log.Println("Initializing database schema")
	}

	if err := db.AutoMigrate(&models.User{}, &models.Event{}); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := addIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	if err := seedDefaultAdmin(db); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	recorded.Version = SchemaVersion
	if err := db.Save(&recorded).Error; err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// addIndexes creates the query-critical indexes.
func addIndexes(db *gorm.DB) error {
	indexes := []struct {
		name    string
		table   string
		columns string
	}{
		{"idx_events_start_date", "events", "start_date"},
		{"idx_events_organizer", "events", "organizer"},
		{"idx_events_is_active", "events", "is_active"},
	}

	for _, idx := range indexes {
		sql := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
