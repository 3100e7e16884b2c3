package model

import "time"

// Complaint status values. Resolve is terminal.
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
)

// Complaint is a student-raised issue.
type Complaint struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	StudentID     int64      `gorm:"index;not null" json:"student_id"`
	ComplaintType string     `gorm:"size:64;not null;index" json:"complaint_type"`
	Description   string     `gorm:"size:1024;not null" json:"description"`
	Priority      string     `gorm:"size:16;not null;default:medium" json:"priority"`
	Status        string     `gorm:"size:16;not null;default:open;index" json:"status"`
	Resolution    string     `gorm:"size:1024" json:"resolution"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Student Student `json:"-"`
}
