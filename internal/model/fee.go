package model

import "time"

// Fee is a chargeable fee head (hostel rent, mess, security deposit, ...).
type Fee struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	FeeType     string    `gorm:"size:64;not null;index" json:"fee_type"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Frequency   string    `gorm:"size:32;not null" json:"frequency"`
	Description string    `gorm:"size:256" json:"description"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// Payment records a student paying against a fee head. ReceiptNo is a
// generated UUID handed back to the payer.
type Payment struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	StudentID   int64     `gorm:"index;not null" json:"student_id"`
	FeeID       int64     `gorm:"index;not null" json:"fee_id"`
	AmountPaid  float64   `gorm:"not null" json:"amount_paid"`
	PaymentDate time.Time `gorm:"not null" json:"payment_date"`
	PaymentMode string    `gorm:"size:32;not null" json:"payment_mode"`
	ReceiptNo   string    `gorm:"uniqueIndex;size:36;not null" json:"receipt_no"`
	Status      string    `gorm:"size:16;not null;default:completed" json:"status"`
	Remarks     string    `gorm:"size:256" json:"remarks"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Student Student `json:"-"`
	Fee     Fee     `json:"-"`
}
