package model

import "time"

// AuditLog records one completed mutating request.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    *int64    `gorm:"index" json:"user_id,omitempty"`
	Action    string    `gorm:"size:128;not null;index" json:"action"`
	Entity    string    `gorm:"size:64;index" json:"entity"`
	RecordID  string    `gorm:"size:32" json:"record_id"`
	Detail    string    `gorm:"size:512" json:"detail"`
	IPAddress string    `gorm:"size:64" json:"ip_address"`
	UserAgent string    `gorm:"size:256" json:"user_agent"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
