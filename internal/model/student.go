package model

import "time"

// Student holds a resident's profile. A student owns at most one active
// allocation at any time.
type Student struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	UserID        *int64     `gorm:"index" json:"user_id,omitempty"`
	FirstName     string     `gorm:"size:64;not null" json:"first_name"`
	LastName      string     `gorm:"size:64;not null" json:"last_name"`
	Gender        string     `gorm:"size:16" json:"gender"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Phone         string     `gorm:"size:32" json:"phone"`
	Email         string     `gorm:"size:128" json:"email"`
	Address       string     `gorm:"size:256" json:"address"`
	Course        string     `gorm:"size:64;index" json:"course"`
	Year          int        `json:"year"`
	GuardianName  string     `gorm:"size:128" json:"guardian_name"`
	GuardianPhone string     `gorm:"size:32" json:"guardian_phone"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}
