package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
)

// CreateMaintenanceTicket opens a ticket and moves its room into
// maintenance in the same transaction.
func (s *gormStore) CreateMaintenanceTicket(ctx context.Context, t *model.MaintenanceTicket) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, t.RoomID).Error; err != nil {
			return notFoundOr(err, "room", t.RoomID)
		}

		t.Status = model.MaintenancePending
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return tx.Model(&model.Room{}).Where("id = ?", t.RoomID).
			Update("status", model.RoomMaintenance).Error
	})
}

// AssignMaintenanceTicket moves a pending ticket to in_progress.
func (s *gormStore) AssignMaintenanceTicket(ctx context.Context, id int64, assignedTo string) (*model.MaintenanceTicket, error) {
	var ticket model.MaintenanceTicket
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ticket, id).Error; err != nil {
			return notFoundOr(err, "maintenance ticket", id)
		}
		if ticket.Status != model.MaintenancePending {
			return ErrInvalidTransition
		}

		ticket.Status = model.MaintenanceInProgress
		ticket.AssignedTo = assignedTo
		return tx.Model(&model.MaintenanceTicket{}).Where("id = ?", id).
			Updates(map[string]any{"status": model.MaintenanceInProgress, "assigned_to": assignedTo}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CompleteMaintenanceTicket closes a ticket. When it was the room's last
// open ticket, the room's status is handed back to the bed-occupancy
// derivation.
func (s *gormStore) CompleteMaintenanceTicket(ctx context.Context, id int64, completedDate time.Time) (*model.MaintenanceTicket, error) {
	var ticket model.MaintenanceTicket
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ticket, id).Error; err != nil {
			return notFoundOr(err, "maintenance ticket", id)
		}
		if ticket.Status == model.MaintenanceCompleted {
			return ErrInvalidTransition
		}

		if err := tx.Model(&model.MaintenanceTicket{}).Where("id = ?", id).
			Updates(map[string]any{
				"status":         model.MaintenanceCompleted,
				"completed_date": completedDate,
			}).Error; err != nil {
			return err
		}
		ticket.Status = model.MaintenanceCompleted
		ticket.CompletedDate = &completedDate

		var open int64
		if err := tx.Model(&model.MaintenanceTicket{}).
			Where("room_id = ? AND status <> ?", ticket.RoomID, model.MaintenanceCompleted).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return nil
		}

		// Last open ticket gone: clear the maintenance flag, then derive.
		if err := tx.Model(&model.Room{}).Where("id = ?", ticket.RoomID).
			Update("status", model.RoomAvailable).Error; err != nil {
			return err
		}
		return recomputeRoomStatus(tx, ticket.RoomID)
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
