package model

import "time"

// Room status values. Available/full are derived from bed occupancy and
// recomputed inside every transaction that flips a bed; maintenance is set
// administratively and sticks until cleared.
const (
	RoomAvailable   = "available"
	RoomFull        = "full"
	RoomMaintenance = "maintenance"
)

// Room belongs to exactly one hostel. Its beds are provisioned in bulk
// (1..Capacity) when the room is created.
type Room struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	HostelID   int64     `gorm:"not null;uniqueIndex:idx_rooms_hostel_number" json:"hostel_id"`
	RoomNumber string    `gorm:"size:16;not null;uniqueIndex:idx_rooms_hostel_number" json:"room_number"`
	Capacity   int       `gorm:"not null" json:"capacity"`
	Floor      int       `json:"floor"`
	Rent       float64   `json:"rent"`
	Status     string    `gorm:"size:16;not null;default:available" json:"status"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Hostel Hostel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Beds   []Bed  `gorm:"foreignKey:RoomID" json:"-"`
}
