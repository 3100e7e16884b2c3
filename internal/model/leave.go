package model

import "time"

// Leave request status values. Approve/reject only from pending.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveRequest is a student's application to be away from the hostel.
type LeaveRequest struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	StudentID int64      `gorm:"index;not null" json:"student_id"`
	FromDate  time.Time  `gorm:"not null" json:"from_date"`
	ToDate    time.Time  `gorm:"not null" json:"to_date"`
	Reason    string     `gorm:"size:512;not null" json:"reason"`
	Status    string     `gorm:"size:16;not null;default:pending;index" json:"status"`
	DecidedBy *int64     `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Student Student `json:"-"`
}
