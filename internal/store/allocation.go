package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
)

// Allocate binds a student to a bed. The whole operation runs in one
// transaction; the conditional UPDATE on the bed row is the linearization
// point, so of N racing calls for one bed exactly one commits and the rest
// fail with ErrBedUnavailable. The partial unique indexes on
// room_allocations are the backstop should the pre-checks ever be bypassed.
func (s *gormStore) Allocate(ctx context.Context, p AllocateParams) (*model.Allocation, error) {
	var alloc model.Allocation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student model.Student
		if err := tx.First(&student, p.StudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("student %d: %w", p.StudentID, ErrNotFound)
			}
			return err
		}

		var bed model.Bed
		if err := tx.First(&bed, p.BedID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("bed %d: %w", p.BedID, ErrNotFound)
			}
			return err
		}
		if bed.RoomID != p.RoomID {
			return ErrBedRoomMismatch
		}

		var active int64
		if err := tx.Model(&model.Allocation{}).
			Where("student_id = ? AND status = ?", p.StudentID, model.AllocationActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrStudentAlreadyAllocated
		}

		if err := occupyBed(tx, p.BedID); err != nil {
			return err
		}

		alloc = model.Allocation{
			StudentID:      p.StudentID,
			RoomID:         p.RoomID,
			BedID:          p.BedID,
			AllocationDate: p.AllocationDate,
			Status:         model.AllocationActive,
		}
		if err := tx.Create(&alloc).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrStudentAlreadyAllocated
			}
			return err
		}

		return recomputeRoomStatus(tx, p.RoomID)
	})
	if err != nil {
		return nil, err
	}
	return &alloc, nil
}

// Vacate closes an active allocation and frees its bed. Vacating twice is
// rejected, not re-applied.
func (s *gormStore) Vacate(ctx context.Context, allocationID int64, vacateDate time.Time) (*model.Allocation, error) {
	var alloc model.Allocation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&alloc, allocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("allocation %d: %w", allocationID, ErrNotFound)
			}
			return err
		}
		if alloc.Status != model.AllocationActive {
			return ErrAlreadyVacated
		}

		// Conditional on status so a concurrent vacate of the same row
		// cannot both apply.
		res := tx.Model(&model.Allocation{}).
			Where("id = ? AND status = ?", allocationID, model.AllocationActive).
			Updates(map[string]any{"status": model.AllocationVacated, "vacate_date": vacateDate})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyVacated
		}

		if err := releaseBed(tx, alloc.BedID); err != nil {
			return err
		}

		alloc.Status = model.AllocationVacated
		alloc.VacateDate = &vacateDate
		return recomputeRoomStatus(tx, alloc.RoomID)
	})
	if err != nil {
		return nil, err
	}
	return &alloc, nil
}

// Reassign moves an active allocation to a new room+bed in place, freeing
// the old bed and occupying the new one as a paired transition. No new
// ledger row is written, matching how transfers were recorded historically.
func (s *gormStore) Reassign(ctx context.Context, allocationID, newRoomID, newBedID int64) (*model.Allocation, error) {
	var alloc model.Allocation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&alloc, allocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("allocation %d: %w", allocationID, ErrNotFound)
			}
			return err
		}
		if alloc.Status != model.AllocationActive {
			return ErrAlreadyVacated
		}

		// Validate the target pair before the same-bed no-op so that a
		// mismatched room is rejected even when the bed is unchanged.
		var newBed model.Bed
		if err := tx.First(&newBed, newBedID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("bed %d: %w", newBedID, ErrNotFound)
			}
			return err
		}
		if newBed.RoomID != newRoomID {
			return ErrBedRoomMismatch
		}
		if alloc.BedID == newBedID {
			return nil
		}

		if err := occupyBed(tx, newBedID); err != nil {
			return err
		}
		if err := releaseBed(tx, alloc.BedID); err != nil {
			return err
		}

		oldRoomID := alloc.RoomID
		res := tx.Model(&model.Allocation{}).
			Where("id = ? AND status = ?", allocationID, model.AllocationActive).
			Updates(map[string]any{"room_id": newRoomID, "bed_id": newBedID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyVacated
		}
		alloc.RoomID = newRoomID
		alloc.BedID = newBedID

		if err := recomputeRoomStatus(tx, oldRoomID); err != nil {
			return err
		}
		return recomputeRoomStatus(tx, newRoomID)
	})
	if err != nil {
		return nil, err
	}
	return &alloc, nil
}

// occupyBed flips a bed available→occupied. Zero rows affected means the
// precondition no longer holds and the caller's transaction must abort.
func occupyBed(tx *gorm.DB, bedID int64) error {
	res := tx.Model(&model.Bed{}).
		Where("id = ? AND status = ?", bedID, model.BedAvailable).
		Update("status", model.BedOccupied)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBedUnavailable
	}
	return nil
}

// releaseBed flips a bed back to available unconditionally; callers only
// reach it while holding the allocation that occupied the bed.
func releaseBed(tx *gorm.DB, bedID int64) error {
	return tx.Model(&model.Bed{}).
		Where("id = ?", bedID).
		Update("status", model.BedAvailable).Error
}

// recomputeRoomStatus derives available/full from the room's beds inside
// the same transaction that flipped one of them. Rooms under maintenance
// keep that status until an admin clears it.
func recomputeRoomStatus(tx *gorm.DB, roomID int64) error {
	var room model.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return err
	}
	if room.Status == model.RoomMaintenance {
		return nil
	}

	var available int64
	if err := tx.Model(&model.Bed{}).
		Where("room_id = ? AND status = ?", roomID, model.BedAvailable).
		Count(&available).Error; err != nil {
		return err
	}

	status := model.RoomAvailable
	if available == 0 {
		status = model.RoomFull
	}
	if status == room.Status {
		return nil
	}
	return tx.Model(&model.Room{}).Where("id = ?", roomID).Update("status", status).Error
}
