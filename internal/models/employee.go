package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee is a worker managed by the HR application. Code is the
// human-readable employee id shown in the UI (e.g. "EMP-0042").
type Employee struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Code      string         `gorm:"column:employee_id;uniqueIndex;size:50;not null" json:"employee_id"`
	BranchID  *uint          `gorm:"index" json:"branch_id,omitempty"`
	Branch    *Branch        `gorm:"foreignKey:BranchID" json:"branch,omitempty"`

	Assignments []EmployeeLocationAssignment `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Branch is an office/branch an employee belongs to.
type Branch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	City      string    `gorm:"size:100" json:"city,omitempty"`
	Address   string    `gorm:"size:500" json:"address,omitempty"`
}
