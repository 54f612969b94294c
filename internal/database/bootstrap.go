package database

import (
	"fmt"
	"log"

	"flavors/backend/internal/config"
	"flavors/backend/internal/models"
	"gorm.io/gorm"
)

func boolPtr(v bool) *bool {
	return &v
}

// seedFlavors are inserted, in order, every time the table is reset.
func seedFlavors() []models.Flavor {
	return []models.Flavor{
		{Name: "Vanilla", IsFavorite: boolPtr(true)},
		{Name: "Chocolate", IsFavorite: boolPtr(false)},
		{Name: "Strawberry", IsFavorite: boolPtr(true)},
	}
}

// Bootstrap prepares the schema before the listener starts. With
// ResetOnStart the flavors table is dropped, recreated and seeded; otherwise
// it is only created when missing.
func Bootstrap(db *gorm.DB, cfg config.Settings) error {
	log.Printf("connected to database")

	if !cfg.ResetOnStart {
		if err := db.AutoMigrate(&models.Flavor{}); err != nil {
			return fmt.Errorf("migrate flavors: %w", err)
		}
		log.Printf("tables ready, keeping existing rows")
		return nil
	}

	return ResetFlavors(db)
}

// ResetFlavors drops the flavors table if present, creates it fresh and
// inserts the seed rows.
func ResetFlavors(db *gorm.DB) error {
	migrator := db.Migrator()
	if err := migrator.DropTable(&models.Flavor{}); err != nil {
		return fmt.Errorf("drop flavors: %w", err)
	}
	if err := migrator.CreateTable(&models.Flavor{}); err != nil {
		return fmt.Errorf("create flavors: %w", err)
	}
	log.Printf("tables created")

	seed := seedFlavors()
	if err := db.Create(&seed).Error; err != nil {
		return fmt.Errorf("seed flavors: %w", err)
	}
	log.Printf("seeded data")
	return nil
}
