package model

import "time"

// Mess is a dining facility attached to a hostel.
type Mess struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	HostelID   int64     `gorm:"index;not null" json:"hostel_id"`
	Name       string    `gorm:"size:128;not null" json:"name"`
	Type       string    `gorm:"size:32" json:"type"`
	MonthlyFee float64   `json:"monthly_fee"`
	IsActive   bool      `gorm:"not null" json:"is_active"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Hostel Hostel `json:"-"`
}

// Menu is one day-of-week entry of a mess menu.
type Menu struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	MessID    int64     `gorm:"not null;uniqueIndex:idx_menus_mess_day" json:"mess_id"`
	Day       string    `gorm:"size:16;not null;uniqueIndex:idx_menus_mess_day" json:"day"`
	Breakfast string    `gorm:"size:256" json:"breakfast"`
	Lunch     string    `gorm:"size:256" json:"lunch"`
	Dinner    string    `gorm:"size:256" json:"dinner"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Mess Mess `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Meal type values for mess attendance.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// MessAttendance marks one student at one meal on one date.
type MessAttendance struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	StudentID int64     `gorm:"not null;uniqueIndex:idx_mess_att_student_date_meal" json:"student_id"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_mess_att_student_date_meal" json:"date"`
	MealType  string    `gorm:"size:16;not null;uniqueIndex:idx_mess_att_student_date_meal" json:"meal_type"`
	Status    string    `gorm:"size:16;not null;default:present" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Student Student `json:"-"`
}
