package main

import (
	"gorm.io/gorm"

	"github.com/agroassist/engine/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Scan{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}

	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}

	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addUserEmailUniqueIndex,
		addScanStatusIndex,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// enableUUIDExtension ensures UUID generation is available
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addUserEmailUniqueIndex enforces case-insensitive email uniqueness in the
// store itself, so concurrent signups for the same address cannot both win.
func addUserEmailUniqueIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower
		ON users (lower(email))
	`).Error
}

// addScanStatusIndex speeds up the worker's status transitions and the
// per-user scan listing.
func addScanStatusIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_scans_user_status
		ON scans (user_id, status)
	`).Error
}
