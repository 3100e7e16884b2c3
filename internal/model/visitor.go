package model

import "time"

// Visitor is a gate-logged guest of a student. OutTime stays nil until the
// visitor checks out; a second checkout is a conflict.
type Visitor struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	StudentID   int64      `gorm:"index;not null" json:"student_id"`
	VisitorName string     `gorm:"size:128;not null" json:"visitor_name"`
	Relation    string     `gorm:"size:64" json:"relation"`
	VisitDate   time.Time  `gorm:"not null;index" json:"visit_date"`
	InTime      time.Time  `gorm:"not null" json:"in_time"`
	OutTime     *time.Time `json:"out_time,omitempty"`
	Purpose     string     `gorm:"size:256" json:"purpose"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Student Student `json:"-"`
}
