package store

import "time"

// AllocateParams carries the inputs of a new allocation.
type AllocateParams struct {
	StudentID      int64
	RoomID         int64
	BedID          int64
	AllocationDate time.Time
}

// AllocationDetail is an allocation row joined with the display fields the
// admin UI needs (student name, room/bed numbers, hostel).
type AllocationDetail struct {
	ID             int64      `json:"id"`
	StudentID      int64      `json:"student_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	RoomID         int64      `json:"room_id"`
	RoomNumber     string     `json:"room_number"`
	BedID          int64      `json:"bed_id"`
	BedNumber      string     `json:"bed_number"`
	HostelID       int64      `json:"hostel_id"`
	HostelName     string     `json:"hostel_name"`
	HostelType     string     `json:"hostel_type"`
	AllocationDate time.Time  `json:"allocation_date"`
	VacateDate     *time.Time `json:"vacate_date,omitempty"`
	Status         string     `json:"status"`
}

// HostelOccupancy is the per-hostel room/bed rollup.
type HostelOccupancy struct {
	HostelID         int64  `json:"hostel_id"`
	HostelName       string `json:"hostel_name"`
	TotalRooms       int64  `json:"total_rooms"`
	AvailableRooms   int64  `json:"available_rooms"`
	FullRooms        int64  `json:"full_rooms"`
	MaintenanceRooms int64  `json:"maintenance_rooms"`
	TotalBeds        int64  `json:"total_beds"`
	AvailableBeds    int64  `json:"available_beds"`
	OccupiedBeds     int64  `json:"occupied_beds"`
}

// PaymentSummaryRow aggregates payments per fee type.
type PaymentSummaryRow struct {
	FeeType      string  `json:"fee_type"`
	PaymentCount int64   `json:"payment_count"`
	TotalPaid    float64 `json:"total_paid"`
}
