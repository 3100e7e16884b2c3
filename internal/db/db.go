package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-admin-backend/config"
	"hostel-admin-backend/internal/model"
)

// Init initializes the database connection and runs migrations.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate runs AutoMigrate for every model plus the DDL gorm cannot
// express. Shared with tests, which run it against in-memory sqlite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Hostel{},
		&model.Room{},
		&model.Bed{},
		&model.Allocation{},
		&model.Fee{},
		&model.Payment{},
		&model.Mess{},
		&model.Menu{},
		&model.MessAttendance{},
		&model.StudentAttendance{},
		&model.Complaint{},
		&model.MaintenanceTicket{},
		&model.Visitor{},
		&model.LeaveRequest{},
		&model.GateEntry{},
		&model.Guest{},
		&model.AuditLog{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	// Partial unique indexes backing the allocation invariant: at most one
	// active allocation per student and per bed. Supported by both postgres
	// and sqlite.
	ddls := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_allocations_active_student ON room_allocations (student_id) WHERE status = 'active'",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_allocations_active_bed ON room_allocations (bed_id) WHERE status = 'active'",
	}
	for _, ddl := range ddls {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("DDL failed on %q: %w", ddl, err)
		}
	}
	return nil
}
