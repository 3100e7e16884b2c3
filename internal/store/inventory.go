package store

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
)

// CreateRoom inserts the room and bulk-provisions its beds, numbered
// 1..capacity, in a single transaction.
func (s *gormStore) CreateRoom(ctx context.Context, room *model.Room) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room.Status = model.RoomAvailable
		if err := tx.Create(room).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return err
		}

		beds := make([]model.Bed, 0, room.Capacity)
		for i := 1; i <= room.Capacity; i++ {
			beds = append(beds, model.Bed{
				RoomID:    room.ID,
				BedNumber: strconv.Itoa(i),
				Status:    model.BedAvailable,
			})
		}
		if len(beds) == 0 {
			return nil
		}
		return tx.Create(&beds).Error
	})
}

// DeleteRoom removes a room and its beds. Refused while any active
// allocation references the room.
func (s *gormStore) DeleteRoom(ctx context.Context, roomID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			return notFoundOr(err, "room", roomID)
		}

		var active int64
		if err := tx.Model(&model.Allocation{}).
			Where("room_id = ? AND status = ?", roomID, model.AllocationActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrInUse
		}

		if err := tx.Where("room_id = ?", roomID).Delete(&model.Bed{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Room{}, roomID).Error
	})
}

// DeleteBed removes one bed. Refused while an active allocation holds it.
func (s *gormStore) DeleteBed(ctx context.Context, bedID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bed model.Bed
		if err := tx.First(&bed, bedID).Error; err != nil {
			return notFoundOr(err, "bed", bedID)
		}

		var active int64
		if err := tx.Model(&model.Allocation{}).
			Where("bed_id = ? AND status = ?", bedID, model.AllocationActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrInUse
		}

		if err := tx.Delete(&model.Bed{}, bedID).Error; err != nil {
			return err
		}
		return recomputeRoomStatus(tx, bed.RoomID)
	})
}

// SetRoomMaintenance puts a room into maintenance, or clears the flag and
// re-derives the status from bed occupancy.
func (s *gormStore) SetRoomMaintenance(ctx context.Context, roomID int64, on bool) (*model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, roomID).Error; err != nil {
			return notFoundOr(err, "room", roomID)
		}

		if on {
			room.Status = model.RoomMaintenance
			return tx.Model(&model.Room{}).Where("id = ?", roomID).
				Update("status", model.RoomMaintenance).Error
		}

		// Clear the sticky flag first so the recompute applies.
		if err := tx.Model(&model.Room{}).Where("id = ?", roomID).
			Update("status", model.RoomAvailable).Error; err != nil {
			return err
		}
		if err := recomputeRoomStatus(tx, roomID); err != nil {
			return err
		}
		return tx.First(&room, roomID).Error
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}
