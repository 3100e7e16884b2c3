package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
)

// allocationDetailQuery is the shared join; every occupancy read is a
// filter over it. Queries run against live state, there is no cache in
// front of the ledger itself.
func (s *gormStore) allocationDetailQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("room_allocations AS ra").
		Select("ra.id, ra.student_id, s.first_name, s.last_name, " +
			"ra.room_id, r.room_number, ra.bed_id, b.bed_number, " +
			"h.id AS hostel_id, h.name AS hostel_name, h.type AS hostel_type, " +
			"ra.allocation_date, ra.vacate_date, ra.status").
		Joins("JOIN students s ON ra.student_id = s.id").
		Joins("JOIN rooms r ON ra.room_id = r.id").
		Joins("JOIN beds b ON ra.bed_id = b.id").
		Joins("JOIN hostels h ON r.hostel_id = h.id")
}

// ListAllocations returns every active allocation with display fields.
func (s *gormStore) ListAllocations(ctx context.Context) ([]AllocationDetail, error) {
	var rows []AllocationDetail
	err := s.allocationDetailQuery(ctx).
		Where("ra.status = ?", model.AllocationActive).
		Order("h.name, r.room_number, b.bed_number").
		Scan(&rows).Error
	return rows, err
}

// GetAllocation returns one allocation (any status) by id.
func (s *gormStore) GetAllocation(ctx context.Context, id int64) (*AllocationDetail, error) {
	var row AllocationDetail
	err := s.allocationDetailQuery(ctx).Where("ra.id = ?", id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, fmt.Errorf("allocation %d: %w", id, ErrNotFound)
	}
	return &row, nil
}

// ActiveAllocationByStudent returns the student's current allocation.
func (s *gormStore) ActiveAllocationByStudent(ctx context.Context, studentID int64) (*AllocationDetail, error) {
	var row AllocationDetail
	err := s.allocationDetailQuery(ctx).
		Where("ra.student_id = ? AND ra.status = ?", studentID, model.AllocationActive).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, fmt.Errorf("active allocation for student %d: %w", studentID, ErrNotFound)
	}
	return &row, nil
}

// AllocationsByRoom returns the active allocations inside one room.
func (s *gormStore) AllocationsByRoom(ctx context.Context, roomID int64) ([]AllocationDetail, error) {
	var rows []AllocationDetail
	err := s.allocationDetailQuery(ctx).
		Where("ra.room_id = ? AND ra.status = ?", roomID, model.AllocationActive).
		Order("b.bed_number").
		Scan(&rows).Error
	return rows, err
}

// AllocationsByHostel returns the active allocations across one hostel.
func (s *gormStore) AllocationsByHostel(ctx context.Context, hostelID int64) ([]AllocationDetail, error) {
	var rows []AllocationDetail
	err := s.allocationDetailQuery(ctx).
		Where("r.hostel_id = ? AND ra.status = ?", hostelID, model.AllocationActive).
		Order("r.room_number, b.bed_number").
		Scan(&rows).Error
	return rows, err
}

// AllocationHistory returns allocation rows regardless of status, newest
// first, optionally restricted to one student.
func (s *gormStore) AllocationHistory(ctx context.Context, studentID *int64) ([]AllocationDetail, error) {
	q := s.allocationDetailQuery(ctx)
	if studentID != nil {
		q = q.Where("ra.student_id = ?", *studentID)
	}
	var rows []AllocationDetail
	err := q.Order("ra.allocation_date DESC, ra.id DESC").Scan(&rows).Error
	return rows, err
}

// OccupancyStats rolls up room and bed counts by status per hostel.
func (s *gormStore) OccupancyStats(ctx context.Context) ([]HostelOccupancy, error) {
	var rows []HostelOccupancy
	err := s.db.WithContext(ctx).
		Table("hostels AS h").
		Select("h.id AS hostel_id, h.name AS hostel_name, " +
			"COUNT(DISTINCT r.id) AS total_rooms, " +
			"COUNT(DISTINCT CASE WHEN r.status = 'available' THEN r.id END) AS available_rooms, " +
			"COUNT(DISTINCT CASE WHEN r.status = 'full' THEN r.id END) AS full_rooms, " +
			"COUNT(DISTINCT CASE WHEN r.status = 'maintenance' THEN r.id END) AS maintenance_rooms, " +
			"COUNT(b.id) AS total_beds, " +
			"COUNT(CASE WHEN b.status = 'available' THEN 1 END) AS available_beds, " +
			"COUNT(CASE WHEN b.status = 'occupied' THEN 1 END) AS occupied_beds").
		Joins("LEFT JOIN rooms r ON h.id = r.hostel_id").
		Joins("LEFT JOIN beds b ON r.id = b.room_id").
		Group("h.id, h.name").
		Order("h.name").
		Scan(&rows).Error
	return rows, err
}

// notFoundOr maps gorm's record-not-found onto the store sentinel.
func notFoundOr(err error, what string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return err
}
