package models

import (
	"strings"
	"time"
)

// GeofenceLocation is a named circular region (center + radius in meters)
// where employee check-in/out is permitted.
type GeofenceLocation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"size:500;not null" json:"address"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	// Radius in meters, always > 0.
	Radius int `gorm:"not null" json:"radius"`

	// Assignments are cascade-deleted with the location.
	Assignments []EmployeeLocationAssignment `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`

	// AssignedEmployees is the employee id list attached by the list query;
	// it is not a column.
	AssignedEmployees []uint `gorm:"-" json:"assigned_employees"`
}

// MatchesQuery reports whether the location matches a case-insensitive
// substring search against name or address. An empty query matches all.
func (l GeofenceLocation) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Address), q)
}

// EmployeeLocationAssignment links one employee to one geofence location.
// The (employee_id, location_id) pair is unique; rows are cascade-deleted
// when either parent is deleted.
type EmployeeLocationAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_employee_location" json:"employee_id"`
	LocationID uint      `gorm:"not null;uniqueIndex:idx_employee_location" json:"location_id"`
}
