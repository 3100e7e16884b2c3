package model

import "time"

// Allocation status values. The only transition out of active is vacate;
// reassign mutates room/bed in place and leaves the row active.
const (
	AllocationActive  = "active"
	AllocationVacated = "vacated"
)

// Allocation binds one student to one room+bed for a date interval.
// Partial unique indexes on (student_id) and (bed_id) where status='active'
// are created in db.Init; they back the single-active-allocation invariant.
type Allocation struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	StudentID      int64      `gorm:"index;not null" json:"student_id"`
	RoomID         int64      `gorm:"index;not null" json:"room_id"`
	BedID          int64      `gorm:"index;not null" json:"bed_id"`
	AllocationDate time.Time  `gorm:"not null" json:"allocation_date"`
	VacateDate     *time.Time `json:"vacate_date,omitempty"`
	Status         string     `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Student Student `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Room    Room    `json:"-"`
	Bed     Bed     `json:"-"`
}

// TableName keeps the original table name used by the admin tooling.
func (Allocation) TableName() string { return "room_allocations" }
