package model

import "time"

// Maintenance ticket status values.
const (
	MaintenancePending    = "pending"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
)

// MaintenanceTicket tracks a repair against a room. An open ticket keeps
// its room in maintenance status; completing the last open ticket hands the
// room status back to the bed-occupancy derivation.
type MaintenanceTicket struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	RoomID        int64      `gorm:"index;not null" json:"room_id"`
	Issue         string     `gorm:"size:128;not null" json:"issue"`
	Description   string     `gorm:"size:1024" json:"description"`
	ReportedDate  time.Time  `gorm:"not null" json:"reported_date"`
	Priority      string     `gorm:"size:16;not null;default:medium" json:"priority"`
	Status        string     `gorm:"size:16;not null;default:pending;index" json:"status"`
	AssignedTo    string     `gorm:"size:128" json:"assigned_to"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Room Room `json:"-"`
}

// TableName keeps the shorter table name over gorm's default pluralization.
func (MaintenanceTicket) TableName() string { return "maintenance_tickets" }
