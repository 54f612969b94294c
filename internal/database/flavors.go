package database

import (
	"context"
	"errors"
	"time"

	"flavors/backend/internal/models"
	"gorm.io/gorm"
)

// FlavorStore is the data access layer for the flavors table. Errors from
// the database are returned as-is.
type FlavorStore struct {
	DB *gorm.DB
}

func NewFlavorStore(db *gorm.DB) *FlavorStore {
	return &FlavorStore{DB: db}
}

func (s *FlavorStore) List(ctx context.Context) ([]models.Flavor, error) {
	flavors := []models.Flavor{}
	if err := s.DB.WithContext(ctx).Find(&flavors).Error; err != nil {
		return nil, err
	}
	return flavors, nil
}

// Get returns nil without an error when no row has the given id.
func (s *FlavorStore) Get(ctx context.Context, id uint) (*models.Flavor, error) {
	var flavor models.Flavor
	err := s.DB.WithContext(ctx).Where("id = ?", id).Take(&flavor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &flavor, nil
}

// Create inserts a row. A nil name is left out of the INSERT so the column's
// NOT NULL constraint rejects it.
func (s *FlavorStore) Create(ctx context.Context, name *string, isFavorite *bool) (*models.Flavor, error) {
	flavor := models.Flavor{IsFavorite: isFavorite}
	query := s.DB.WithContext(ctx)
	if name != nil {
		flavor.Name = *name
	} else {
		query = query.Omit("name")
	}

	if err := query.Create(&flavor).Error; err != nil {
		return nil, err
	}
	return &flavor, nil
}

// Update sets name and is_favorite, refreshes updated_at and returns the row
// as written. It returns nil without an error when no row has the given id.
func (s *FlavorStore) Update(ctx context.Context, id uint, name *string, isFavorite *bool) (*models.Flavor, error) {
	var updated *models.Flavor
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := map[string]interface{}{
			"name":        name,
			"is_favorite": isFavorite,
			"updated_at":  time.Now(),
		}
		result := tx.Model(&models.Flavor{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var flavor models.Flavor
		if err := tx.Where("id = ?", id).Take(&flavor).Error; err != nil {
			return err
		}
		updated = &flavor
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the row if it exists; deleting a missing id is not an error.
func (s *FlavorStore) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Flavor{}).Error
}

// Ping checks that the database still answers.
func (s *FlavorStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
