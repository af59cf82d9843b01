package db

import (
	"fmt"

	"github.com/Travelintrips/HRD/internal/models"
	"gorm.io/gorm"
)

// Seed inserts default reference data. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Branch{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed branches: %w", err)
	}
	if count == 0 {
		if err := db.Create(&models.Branch{Name: "Head Office", City: "Jakarta"}).Error; err != nil {
			return fmt.Errorf("seed branches: %w", err)
		}
	}
	return nil
}
