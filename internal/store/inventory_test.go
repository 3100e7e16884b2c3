package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-admin-backend/internal/model"
)

func TestCreateRoomProvisionsBeds(t *testing.T) {
	s := newTestStore(t)

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "301", 3)

	beds := roomBeds(t, s, room.ID)
	require.Len(t, beds, 3)
	for i, bed := range beds {
		assert.Equal(t, model.BedAvailable, bed.Status)
		assert.Equal(t, room.ID, bed.RoomID)
		assert.NotEmpty(t, bed.BedNumber, "bed %d", i)
	}
	assert.Equal(t, model.RoomAvailable, room.Status)
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	s := newTestStore(t)

	h := seedHostel(t, s, "North Block")
	seedRoom(t, s, h.ID, "301", 2)

	dup := model.Room{HostelID: h.ID, RoomNumber: "301", Capacity: 2}
	err := s.CreateRoom(context.Background(), &dup)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestDeleteRoomGuardedByActiveAllocation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 1)
	bed := roomBeds(t, s, room.ID)[0]
	a := allocate(t, s, seedStudent(t, s, "Alice").ID, room.ID, bed.ID)

	assert.ErrorIs(t, s.DeleteRoom(ctx, room.ID), ErrInUse)

	_, err := s.Vacate(ctx, a.ID, date(2026, 8, 20))
	require.NoError(t, err)
	require.NoError(t, s.DeleteRoom(ctx, room.ID))

	// Beds go with the room.
	assert.Empty(t, roomBeds(t, s, room.ID))
	assert.ErrorIs(t, s.DeleteRoom(ctx, room.ID), ErrNotFound)
}

func TestDeleteBedGuardedAndRederives(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 2)
	beds := roomBeds(t, s, room.ID)
	a := allocate(t, s, seedStudent(t, s, "Alice").ID, room.ID, beds[0].ID)

	assert.ErrorIs(t, s.DeleteBed(ctx, beds[0].ID), ErrInUse)

	// Removing the last free bed leaves only the occupied one: room full.
	require.NoError(t, s.DeleteBed(ctx, beds[1].ID))
	assert.Equal(t, model.RoomFull, reloadRoom(t, s, room.ID).Status)

	_, err := s.Vacate(ctx, a.ID, date(2026, 8, 20))
	require.NoError(t, err)
	assert.Equal(t, model.RoomAvailable, reloadRoom(t, s, room.ID).Status)
}

func TestRoomMaintenanceIsSticky(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 1)
	bed := roomBeds(t, s, room.ID)[0]

	set, err := s.SetRoomMaintenance(ctx, room.ID, true)
	require.NoError(t, err)
	assert.Equal(t, model.RoomMaintenance, set.Status)

	// Occupancy changes do not override the maintenance flag.
	allocate(t, s, seedStudent(t, s, "Alice").ID, room.ID, bed.ID)
	assert.Equal(t, model.RoomMaintenance, reloadRoom(t, s, room.ID).Status)

	// Clearing re-derives from the beds, which are all taken.
	cleared, err := s.SetRoomMaintenance(ctx, room.ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.RoomFull, cleared.Status)
}

func TestMaintenanceTicketFlow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 2)

	t1 := model.MaintenanceTicket{RoomID: room.ID, Issue: "leaking tap", Priority: "high", ReportedDate: date(2026, 8, 1)}
	require.NoError(t, s.CreateMaintenanceTicket(ctx, &t1))
	assert.Equal(t, model.MaintenancePending, t1.Status)
	assert.Equal(t, model.RoomMaintenance, reloadRoom(t, s, room.ID).Status)

	t2 := model.MaintenanceTicket{RoomID: room.ID, Issue: "broken fan", Priority: "low", ReportedDate: date(2026, 8, 2)}
	require.NoError(t, s.CreateMaintenanceTicket(ctx, &t2))

	assigned, err := s.AssignMaintenanceTicket(ctx, t1.ID, "R. Mehta")
	require.NoError(t, err)
	assert.Equal(t, model.MaintenanceInProgress, assigned.Status)
	assert.Equal(t, "R. Mehta", assigned.AssignedTo)

	// Assign is only valid from pending.
	_, err = s.AssignMaintenanceTicket(ctx, t1.ID, "R. Mehta")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Completing one of two open tickets keeps the room in maintenance.
	done, err := s.CompleteMaintenanceTicket(ctx, t1.ID, date(2026, 8, 5))
	require.NoError(t, err)
	assert.Equal(t, model.MaintenanceCompleted, done.Status)
	require.NotNil(t, done.CompletedDate)
	assert.Equal(t, model.RoomMaintenance, reloadRoom(t, s, room.ID).Status)

	// Completing the last one releases the hold.
	_, err = s.CompleteMaintenanceTicket(ctx, t2.ID, date(2026, 8, 6))
	require.NoError(t, err)
	assert.Equal(t, model.RoomAvailable, reloadRoom(t, s, room.ID).Status)

	_, err = s.CompleteMaintenanceTicket(ctx, t2.ID, date(2026, 8, 7))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
