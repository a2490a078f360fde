package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Gokulrbs/example-attendx/config"
	"github.com/Gokulrbs/example-attendx/models"
)

// Connect opens the Postgres pool and ensures the three tables exist.
// Migration is create-if-absent and idempotent; an already-provisioned
// database is a no-op. The returned handle is injected into repositories,
// nothing keeps it as package state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema for any gorm dialect (tests run it on sqlite).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Employee{},
		&models.Department{},
		&models.Attendance{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
