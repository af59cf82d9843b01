package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an authenticated account in the system.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Email     string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"` // Hashed, never exposed in JSON
	// Profile holds the HR metadata captured at registration.
	// A nil value means registration succeeded at the identity layer but the
	// profile write failed; the account stays usable (see AuthHandler.Register).
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}
