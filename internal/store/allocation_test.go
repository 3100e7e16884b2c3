package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-admin-backend/internal/model"
)

func TestAllocateLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 2)
	beds := roomBeds(t, s, room.ID)
	require.Len(t, beds, 2)

	alice := seedStudent(t, s, "Alice")
	bala := seedStudent(t, s, "Bala")

	a1 := allocate(t, s, alice.ID, room.ID, beds[0].ID)
	assert.Equal(t, model.AllocationActive, a1.Status)
	assert.Equal(t, model.BedOccupied, reloadBed(t, s, beds[0].ID).Status)
	assert.Equal(t, model.RoomAvailable, reloadRoom(t, s, room.ID).Status)

	// Last bed taken: room derives to full.
	allocate(t, s, bala.ID, room.ID, beds[1].ID)
	assert.Equal(t, model.RoomFull, reloadRoom(t, s, room.ID).Status)

	// Vacating frees the bed and the room goes back to available.
	vacated, err := s.Vacate(ctx, a1.ID, date(2026, 8, 20))
	require.NoError(t, err)
	assert.Equal(t, model.AllocationVacated, vacated.Status)
	require.NotNil(t, vacated.VacateDate)
	assert.Equal(t, model.BedAvailable, reloadBed(t, s, beds[0].ID).Status)
	assert.Equal(t, model.RoomAvailable, reloadRoom(t, s, room.ID).Status)

	_, err = s.Vacate(ctx, a1.ID, date(2026, 8, 21))
	assert.ErrorIs(t, err, ErrAlreadyVacated)

	// The freed bed is immediately reusable.
	allocate(t, s, alice.ID, room.ID, beds[0].ID)
}

func TestAllocateRejectsTakenBed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 1)
	bed := roomBeds(t, s, room.ID)[0]

	allocate(t, s, seedStudent(t, s, "Alice").ID, room.ID, bed.ID)

	_, err := s.Allocate(ctx, AllocateParams{
		StudentID:      seedStudent(t, s, "Bala").ID,
		RoomID:         room.ID,
		BedID:          bed.ID,
		AllocationDate: date(2026, 8, 2),
	})
	assert.ErrorIs(t, err, ErrBedUnavailable)
}

func TestAllocateRejectsSecondActiveAllocation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 2)
	beds := roomBeds(t, s, room.ID)
	alice := seedStudent(t, s, "Alice")

	allocate(t, s, alice.ID, room.ID, beds[0].ID)

	_, err := s.Allocate(ctx, AllocateParams{
		StudentID:      alice.ID,
		RoomID:         room.ID,
		BedID:          beds[1].ID,
		AllocationDate: date(2026, 8, 2),
	})
	assert.ErrorIs(t, err, ErrStudentAlreadyAllocated)
	// The failed attempt must not have touched the second bed.
	assert.Equal(t, model.BedAvailable, reloadBed(t, s, beds[1].ID).Status)
}

func TestAllocateValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	roomA := seedRoom(t, s, h.ID, "101", 1)
	roomB := seedRoom(t, s, h.ID, "102", 1)
	bedA := roomBeds(t, s, roomA.ID)[0]
	alice := seedStudent(t, s, "Alice")

	_, err := s.Allocate(ctx, AllocateParams{StudentID: 9999, RoomID: roomA.ID, BedID: bedA.ID, AllocationDate: date(2026, 8, 1)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Allocate(ctx, AllocateParams{StudentID: alice.ID, RoomID: roomA.ID, BedID: 9999, AllocationDate: date(2026, 8, 1)})
	assert.ErrorIs(t, err, ErrNotFound)

	// Bed belongs to roomA, claimed against roomB.
	_, err = s.Allocate(ctx, AllocateParams{StudentID: alice.ID, RoomID: roomB.ID, BedID: bedA.ID, AllocationDate: date(2026, 8, 1)})
	assert.ErrorIs(t, err, ErrBedRoomMismatch)
}

// Of N concurrent attempts on one bed exactly one commits; the rest see
// the bed as unavailable, never a partial write.
func TestConcurrentAllocateSingleWinner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 1)
	bed := roomBeds(t, s, room.ID)[0]

	const n = 8
	students := make([]*model.Student, n)
	for i := range students {
		students[i] = seedStudent(t, s, "Racer")
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Allocate(ctx, AllocateParams{
				StudentID:      students[i].ID,
				RoomID:         room.ID,
				BedID:          bed.ID,
				AllocationDate: date(2026, 8, 1),
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrBedUnavailable)
		}
	}
	assert.Equal(t, 1, wins)

	var active int64
	require.NoError(t, s.DB().Model(&model.Allocation{}).
		Where("bed_id = ? AND status = ?", bed.ID, model.AllocationActive).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)
	assert.Equal(t, model.BedOccupied, reloadBed(t, s, bed.ID).Status)
}

func TestReassign(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	roomA := seedRoom(t, s, h.ID, "101", 1)
	roomB := seedRoom(t, s, h.ID, "102", 1)
	bedA := roomBeds(t, s, roomA.ID)[0]
	bedB := roomBeds(t, s, roomB.ID)[0]
	alice := seedStudent(t, s, "Alice")

	a := allocate(t, s, alice.ID, roomA.ID, bedA.ID)
	assert.Equal(t, model.RoomFull, reloadRoom(t, s, roomA.ID).Status)

	moved, err := s.Reassign(ctx, a.ID, roomB.ID, bedB.ID)
	require.NoError(t, err)
	assert.Equal(t, roomB.ID, moved.RoomID)
	assert.Equal(t, bedB.ID, moved.BedID)
	assert.Equal(t, model.AllocationActive, moved.Status)

	// Old bed freed, new bed taken, both room statuses re-derived.
	assert.Equal(t, model.BedAvailable, reloadBed(t, s, bedA.ID).Status)
	assert.Equal(t, model.BedOccupied, reloadBed(t, s, bedB.ID).Status)
	assert.Equal(t, model.RoomAvailable, reloadRoom(t, s, roomA.ID).Status)
	assert.Equal(t, model.RoomFull, reloadRoom(t, s, roomB.ID).Status)

	// No second ledger row was written.
	var total int64
	require.NoError(t, s.DB().Model(&model.Allocation{}).
		Where("student_id = ?", alice.ID).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestReassignSameBedIsNoop(t *testing.T) {
	s := newTestStore(t)

	h := seedHostel(t, s, "North Block")
	room := seedRoom(t, s, h.ID, "101", 1)
	bed := roomBeds(t, s, room.ID)[0]
	a := allocate(t, s, seedStudent(t, s, "Alice").ID, room.ID, bed.ID)

	moved, err := s.Reassign(context.Background(), a.ID, room.ID, bed.ID)
	require.NoError(t, err)
	assert.Equal(t, bed.ID, moved.BedID)
	assert.Equal(t, model.BedOccupied, reloadBed(t, s, bed.ID).Status)
}

func TestReassignRejections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := seedHostel(t, s, "North Block")
	roomA := seedRoom(t, s, h.ID, "101", 1)
	roomB := seedRoom(t, s, h.ID, "102", 1)
	bedA := roomBeds(t, s, roomA.ID)[0]
	bedB := roomBeds(t, s, roomB.ID)[0]

	a := allocate(t, s, seedStudent(t, s, "Alice").ID, roomA.ID, bedA.ID)
	allocate(t, s, seedStudent(t, s, "Bala").ID, roomB.ID, bedB.ID)

	// Target bed already held by someone else.
	_, err := s.Reassign(ctx, a.ID, roomB.ID, bedB.ID)
	assert.ErrorIs(t, err, ErrBedUnavailable)

	// Target bed not in the claimed room.
	_, err = s.Reassign(ctx, a.ID, roomB.ID, bedA.ID)
	assert.ErrorIs(t, err, ErrBedRoomMismatch)

	// Vacated allocation cannot move.
	_, err = s.Vacate(ctx, a.ID, date(2026, 8, 20))
	require.NoError(t, err)
	_, err = s.Reassign(ctx, a.ID, roomA.ID, bedA.ID)
	assert.ErrorIs(t, err, ErrAlreadyVacated)

	_, err = s.Reassign(ctx, 9999, roomA.ID, bedA.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVacateNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Vacate(context.Background(), 9999, date(2026, 8, 20))
	assert.ErrorIs(t, err, ErrNotFound)
}
