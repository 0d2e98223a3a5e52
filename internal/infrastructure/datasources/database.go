// Package datasources opens the warehouse database. Sqlite backs the
// default single-file deployment; postgres is available for shared
// environments.
package datasources

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"insure-dw.backend/internal/config"
	"insure-dw.backend/internal/infrastructure/models"
)

// Open connects to the configured database
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite", "":
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.Database.DSN,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Migrate creates or updates all warehouse tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Quote{},
		&models.Policy{},
		&models.PaymentTransaction{},
		&models.Feature{},
		&models.FeatureMetadata{},
	)
}
