package handlers

import (
	"testing"

	"github.com/Travelintrips/HRD/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Profile{},
		&models.Branch{}, &models.Employee{},
		&models.GeofenceLocation{}, &models.EmployeeLocationAssignment{},
		&models.Shift{}, &models.LeaveRequest{}, &models.Freelancer{},
		&models.Attendance{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, name, code string) models.Employee {
	t.Helper()
	e := models.Employee{Name: name, Code: code}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return e
}
