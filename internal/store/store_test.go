package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-admin-backend/internal/db"
	"hostel-admin-backend/internal/model"
)

// newTestStore opens an isolated in-memory database per test. A single
// connection serializes transactions, which keeps the concurrency tests
// deterministic.
func newTestStore(t *testing.T) Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return NewGormStore(gdb)
}

func seedHostel(t *testing.T, s Store, name string) *model.Hostel {
	t.Helper()
	h := model.Hostel{Name: name, Type: "boys", Address: "Campus North"}
	require.NoError(t, s.DB().Create(&h).Error)
	return &h
}

// seedRoom provisions a room and its beds through the store so bed rows
// exist exactly as production creates them.
func seedRoom(t *testing.T, s Store, hostelID int64, number string, capacity int) *model.Room {
	t.Helper()
	r := model.Room{HostelID: hostelID, RoomNumber: number, Capacity: capacity, Floor: 1, Rent: 4500}
	require.NoError(t, s.CreateRoom(context.Background(), &r))
	return &r
}

func seedStudent(t *testing.T, s Store, first string) *model.Student {
	t.Helper()
	st := model.Student{FirstName: first, LastName: "Kumar", Course: "B.Tech", Year: 2}
	require.NoError(t, s.DB().Create(&st).Error)
	return &st
}

func roomBeds(t *testing.T, s Store, roomID int64) []model.Bed {
	t.Helper()
	var beds []model.Bed
	require.NoError(t, s.DB().Where("room_id = ?", roomID).Order("bed_number").Find(&beds).Error)
	return beds
}

func reloadRoom(t *testing.T, s Store, roomID int64) *model.Room {
	t.Helper()
	var r model.Room
	require.NoError(t, s.DB().First(&r, roomID).Error)
	return &r
}

func reloadBed(t *testing.T, s Store, bedID int64) *model.Bed {
	t.Helper()
	var b model.Bed
	require.NoError(t, s.DB().First(&b, bedID).Error)
	return &b
}

func allocate(t *testing.T, s Store, studentID, roomID, bedID int64) *model.Allocation {
	t.Helper()
	a, err := s.Allocate(context.Background(), AllocateParams{
		StudentID:      studentID,
		RoomID:         roomID,
		BedID:          bedID,
		AllocationDate: date(2026, 8, 1),
	})
	require.NoError(t, err)
	return a
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
