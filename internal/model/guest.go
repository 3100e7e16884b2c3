package model

import "time"

// Guest is a paying guest booked into a room for a date range. Bookings
// are tracked outside the allocation ledger and do not hold beds.
type Guest struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"size:128;not null" json:"full_name"`
	Email     string    `gorm:"size:128" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Gender    string    `gorm:"size:16" json:"gender"`
	RoomID    int64     `gorm:"index;not null" json:"room_id"`
	CheckIn   time.Time `gorm:"not null" json:"check_in"`
	CheckOut  time.Time `gorm:"not null" json:"check_out"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Room Room `json:"-"`
}
