package repositories

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/magno-tech/exercise-tracker/internal/models"
)

// Connect opens the database and brings the schema up to date.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the model migrations. Split out from Connect so tests can run
// it against their own database handle.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Exercise{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
