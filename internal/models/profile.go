package models

import (
	"time"
)

// Profile holds the personal data collected at registration, one row per
// user. Only the owning user may read or update it (see internal/policy and
// the row-level security statements in internal/db).
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`

	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	Alias        string `gorm:"size:100" json:"alias,omitempty"`
	PlaceOfBirth string `gorm:"size:100" json:"place_of_birth,omitempty"`
	DateOfBirth  string `gorm:"size:20" json:"date_of_birth,omitempty"`
	Religion     string `gorm:"size:50" json:"religion,omitempty"`
	Address      string `gorm:"size:500" json:"address,omitempty"`
	Phone        string `gorm:"size:30" json:"phone,omitempty"`
	FamilyPhone  string `gorm:"size:30" json:"family_phone,omitempty"`

	// Public URLs of the uploaded registration documents. Null when the
	// corresponding file was never uploaded.
	SelfieURL *string `gorm:"size:500" json:"selfie_url,omitempty"`
	KTPURL    *string `gorm:"size:500" json:"ktp_url,omitempty"`
	KKURL     *string `gorm:"size:500" json:"kk_url,omitempty"`
	CVURL     *string `gorm:"size:500" json:"cv_url,omitempty"`
}

// GetUserID returns the owning user id for ownership checks.
func (p Profile) GetUserID() uint { return p.UserID }

// FullName joins first and last name, skipping empty parts.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
