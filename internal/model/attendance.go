package model

import "time"

// StudentAttendance is the nightly roll-call record.
type StudentAttendance struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	StudentID int64     `gorm:"not null;uniqueIndex:idx_student_att_student_date" json:"student_id"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_student_att_student_date" json:"date"`
	Status    string    `gorm:"size:16;not null" json:"status"`
	MarkedBy  int64     `gorm:"index" json:"marked_by"`
	Remarks   string    `gorm:"size:256" json:"remarks"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Student Student `json:"-"`
}
