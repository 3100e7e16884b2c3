package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
)

// CreatePayment validates the student and fee, stamps a receipt number and
// records the payment.
func (s *gormStore) CreatePayment(ctx context.Context, p *model.Payment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student model.Student
		if err := tx.First(&student, p.StudentID).Error; err != nil {
			return notFoundOr(err, "student", p.StudentID)
		}

		var fee model.Fee
		if err := tx.First(&fee, p.FeeID).Error; err != nil {
			return notFoundOr(err, "fee", p.FeeID)
		}
		if !fee.IsActive {
			return ErrFeeInactive
		}

		p.ReceiptNo = uuid.NewString()
		if p.Status == "" {
			p.Status = "completed"
		}
		return tx.Create(p).Error
	})
}

// PaymentSummary aggregates completed payments per fee type.
func (s *gormStore) PaymentSummary(ctx context.Context) ([]PaymentSummaryRow, error) {
	var rows []PaymentSummaryRow
	err := s.db.WithContext(ctx).
		Table("payments AS p").
		Select("f.fee_type, COUNT(p.id) AS payment_count, COALESCE(SUM(p.amount_paid), 0) AS total_paid").
		Joins("JOIN fees f ON p.fee_id = f.id").
		Where("p.status = ?", "completed").
		Group("f.fee_type").
		Order("f.fee_type").
		Scan(&rows).Error
	return rows, err
}
