package main

import (
	"gorm.io/gorm"

	"github.com/loftbook/engine/internal/models"
)

// registerModels returns all models that need migration.
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Loft{},
		&models.Bird{},
	}
}

// runMigrations executes all database migrations. The UUID extension must
// exist before AutoMigrate creates columns that default to gen_random_uuid().
func runMigrations(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle.
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addBirdOwnerLoftIndex,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// enableUUIDExtension ensures UUID generation is available.
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addBirdOwnerLoftIndex backs the unassign-on-loft-delete query.
func addBirdOwnerLoftIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_birds_owner_loft
		ON birds(owner_id, loft_id)
		WHERE deleted_at IS NULL
	`).Error
}
