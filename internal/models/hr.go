package models

import (
	"time"
)

// Shift is a scheduled work window for an employee.
type Shift struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	EmployeeID uint      `gorm:"index;not null" json:"employee_id"`
	Date       string    `gorm:"size:20;not null" json:"date"` // YYYY-MM-DD
	StartTime  string    `gorm:"size:10;not null" json:"start_time"`
	EndTime    string    `gorm:"size:10;not null" json:"end_time"`
	Notes      string    `gorm:"size:500" json:"notes,omitempty"`
}

// LeaveStatus is the review state of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest is an employee's request for time off.
type LeaveRequest struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	EmployeeID uint        `gorm:"index;not null" json:"employee_id"`
	Type       string      `gorm:"size:50;not null" json:"type"` // annual, sick, unpaid...
	StartDate  string      `gorm:"size:20;not null" json:"start_date"`
	EndDate    string      `gorm:"size:20;not null" json:"end_date"`
	Reason     string      `gorm:"size:500" json:"reason,omitempty"`
	Status     LeaveStatus `gorm:"size:20;not null;default:pending" json:"status"`
}

func (l LeaveRequest) IsPending() bool { return l.Status == LeaveStatusPending }

// CanReview reports whether the request can still be approved or rejected.
func (l LeaveRequest) CanReview() bool { return l.Status == LeaveStatusPending }

// Freelancer is a non-permanent worker paid per day.
type Freelancer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:30" json:"phone,omitempty"`
	DailyRate float64   `gorm:"not null" json:"daily_rate"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
}

// AttendanceType distinguishes check-in from check-out rows.
type AttendanceType string

const (
	AttendanceCheckIn  AttendanceType = "check_in"
	AttendanceCheckOut AttendanceType = "check_out"
)

// Attendance is one recorded check-in or check-out event.
type Attendance struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	EmployeeID uint           `gorm:"index;not null" json:"employee_id"`
	LocationID uint           `gorm:"index;not null" json:"location_id"`
	Type       AttendanceType `gorm:"size:20;not null" json:"type"`
	Latitude   *float64       `json:"latitude,omitempty"`
	Longitude  *float64       `json:"longitude,omitempty"`
}
