package model

import "time"

// Hostel is a building; rooms reference it by foreign key.
type Hostel struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Type          string    `gorm:"size:32;index" json:"type"`
	Address       string    `gorm:"size:256" json:"address"`
	WardenName    string    `gorm:"size:128" json:"warden_name"`
	WardenContact string    `gorm:"size:32" json:"warden_contact"`
	TotalRooms    int       `json:"total_rooms"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Rooms []Room `gorm:"foreignKey:HostelID" json:"-"`
}
