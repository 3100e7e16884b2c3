package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
)

// Store defines every database operation that carries an invariant or
// spans more than one row. Plain single-table reads go straight to DB()
// from the handlers.
type Store interface {
	// DB exposes the underlying handle for simple reads.
	DB() *gorm.DB

	// Allocation ledger. Each mutating call is one transaction; the bed
	// status flip is conditional, so a lost race surfaces as a conflict
	// instead of a second active allocation.
	Allocate(ctx context.Context, p AllocateParams) (*model.Allocation, error)
	Vacate(ctx context.Context, allocationID int64, vacateDate time.Time) (*model.Allocation, error)
	Reassign(ctx context.Context, allocationID, newRoomID, newBedID int64) (*model.Allocation, error)

	// Occupancy queries (derived reads, no mutation).
	ListAllocations(ctx context.Context) ([]AllocationDetail, error)
	GetAllocation(ctx context.Context, id int64) (*AllocationDetail, error)
	ActiveAllocationByStudent(ctx context.Context, studentID int64) (*AllocationDetail, error)
	AllocationsByRoom(ctx context.Context, roomID int64) ([]AllocationDetail, error)
	AllocationsByHostel(ctx context.Context, hostelID int64) ([]AllocationDetail, error)
	AllocationHistory(ctx context.Context, studentID *int64) ([]AllocationDetail, error)
	OccupancyStats(ctx context.Context) ([]HostelOccupancy, error)

	// Room/bed inventory.
	CreateRoom(ctx context.Context, room *model.Room) error
	DeleteRoom(ctx context.Context, roomID int64) error
	DeleteBed(ctx context.Context, bedID int64) error
	SetRoomMaintenance(ctx context.Context, roomID int64, on bool) (*model.Room, error)

	// Maintenance tickets.
	CreateMaintenanceTicket(ctx context.Context, t *model.MaintenanceTicket) error
	AssignMaintenanceTicket(ctx context.Context, id int64, assignedTo string) (*model.MaintenanceTicket, error)
	CompleteMaintenanceTicket(ctx context.Context, id int64, completedDate time.Time) (*model.MaintenanceTicket, error)

	// Fees and payments.
	CreatePayment(ctx context.Context, p *model.Payment) error
	PaymentSummary(ctx context.Context) ([]PaymentSummaryRow, error)

	// Feature state machines.
	ResolveComplaint(ctx context.Context, id int64, resolution string) (*model.Complaint, error)
	DecideLeave(ctx context.Context, id int64, approve bool, decidedBy int64) (*model.LeaveRequest, error)
	CheckoutVisitor(ctx context.Context, id int64, at time.Time) (*model.Visitor, error)
	ReturnGateEntry(ctx context.Context, id int64, at time.Time) (*model.GateEntry, error)

	// Attendance bulk inserts.
	BulkMessAttendance(ctx context.Context, rows []model.MessAttendance) error
	BulkStudentAttendance(ctx context.Context, rows []model.StudentAttendance) error

	// Accounts and audit.
	RegisterUser(ctx context.Context, username, password, role string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
	AppendAudit(ctx context.Context, entry *model.AuditLog) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}
