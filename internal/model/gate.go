package model

import "time"

// GateEntry logs a student leaving campus. InTime stays nil until they
// return; rows with nil InTime are the "currently outside" set.
type GateEntry struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	StudentID int64      `gorm:"index;not null" json:"student_id"`
	Date      time.Time  `gorm:"not null;index" json:"date"`
	OutTime   time.Time  `gorm:"not null" json:"out_time"`
	InTime    *time.Time `json:"in_time,omitempty"`
	Purpose   string     `gorm:"size:256" json:"purpose"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Student Student `json:"-"`
}

// TableName keeps the original table name.
func (GateEntry) TableName() string { return "gate_entries" }
