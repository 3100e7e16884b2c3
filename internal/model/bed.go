package model

import "time"

// Bed status values. A bed is occupied iff exactly one active allocation
// references it.
const (
	BedAvailable = "available"
	BedOccupied  = "occupied"
)

// Bed is the unit of allocation.
type Bed struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	RoomID    int64     `gorm:"not null;uniqueIndex:idx_beds_room_number" json:"room_id"`
	BedNumber string    `gorm:"size:8;not null;uniqueIndex:idx_beds_room_number" json:"bed_number"`
	Status    string    `gorm:"size:16;not null;default:available" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Room Room `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
