package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
)

// ResolveComplaint closes a complaint with a resolution note. Resolving a
// resolved complaint is a conflict.
func (s *gormStore) ResolveComplaint(ctx context.Context, id int64, resolution string) (*model.Complaint, error) {
	var complaint model.Complaint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&complaint, id).Error; err != nil {
			return notFoundOr(err, "complaint", id)
		}
		if complaint.Status == model.ComplaintResolved {
			return ErrInvalidTransition
		}

		now := time.Now().UTC()
		if err := tx.Model(&model.Complaint{}).Where("id = ?", id).
			Updates(map[string]any{
				"status":      model.ComplaintResolved,
				"resolution":  resolution,
				"resolved_at": now,
			}).Error; err != nil {
			return err
		}
		complaint.Status = model.ComplaintResolved
		complaint.Resolution = resolution
		complaint.ResolvedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// DecideLeave approves or rejects a pending leave request.
func (s *gormStore) DecideLeave(ctx context.Context, id int64, approve bool, decidedBy int64) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&leave, id).Error; err != nil {
			return notFoundOr(err, "leave request", id)
		}
		if leave.Status != model.LeavePending {
			return ErrInvalidTransition
		}

		status := model.LeaveApproved
		if !approve {
			status = model.LeaveRejected
		}
		now := time.Now().UTC()
		if err := tx.Model(&model.LeaveRequest{}).Where("id = ?", id).
			Updates(map[string]any{
				"status":     status,
				"decided_by": decidedBy,
				"decided_at": now,
			}).Error; err != nil {
			return err
		}
		leave.Status = status
		leave.DecidedBy = &decidedBy
		leave.DecidedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// CheckoutVisitor stamps the visitor's out time once.
func (s *gormStore) CheckoutVisitor(ctx context.Context, id int64, at time.Time) (*model.Visitor, error) {
	var visitor model.Visitor
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&visitor, id).Error; err != nil {
			return notFoundOr(err, "visitor", id)
		}
		if visitor.OutTime != nil {
			return ErrInvalidTransition
		}

		if err := tx.Model(&model.Visitor{}).Where("id = ?", id).
			Update("out_time", at).Error; err != nil {
			return err
		}
		visitor.OutTime = &at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// ReturnGateEntry stamps the student's return once.
func (s *gormStore) ReturnGateEntry(ctx context.Context, id int64, at time.Time) (*model.GateEntry, error) {
	var entry model.GateEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, id).Error; err != nil {
			return notFoundOr(err, "gate entry", id)
		}
		if entry.InTime != nil {
			return ErrInvalidTransition
		}

		if err := tx.Model(&model.GateEntry{}).Where("id = ?", id).
			Update("in_time", at).Error; err != nil {
			return err
		}
		entry.InTime = &at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// BulkMessAttendance inserts a batch of meal attendance rows atomically.
// A duplicate (student, date, meal) anywhere in the batch rejects the
// whole batch.
func (s *gormStore) BulkMessAttendance(ctx context.Context, rows []model.MessAttendance) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// BulkStudentAttendance inserts a batch of roll-call rows atomically.
func (s *gormStore) BulkStudentAttendance(ctx context.Context, rows []model.StudentAttendance) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
