package store

import (
	"errors"
	"strings"
)

// Sentinel errors raised by store operations. The API layer maps each of
// these to an HTTP status; everything else is a 500.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrBedUnavailable is returned when the target bed is not available at
	// write time. This is the loser's result of a lost allocation race.
	ErrBedUnavailable = errors.New("bed is not available")

	// ErrBedRoomMismatch is returned when the bed does not belong to the
	// requested room.
	ErrBedRoomMismatch = errors.New("bed does not belong to the given room")

	// ErrStudentAlreadyAllocated is returned when the student already has
	// an active allocation.
	ErrStudentAlreadyAllocated = errors.New("student already has an active allocation")

	// ErrAlreadyVacated is returned on a second vacate of the same
	// allocation, and on reassigning a vacated allocation.
	ErrAlreadyVacated = errors.New("allocation is already vacated")

	// ErrInUse is returned when deleting a room or bed that an active
	// allocation still references.
	ErrInUse = errors.New("an active allocation references this record")

	// ErrDuplicate is returned when a unique constraint rejects a write
	// (duplicate attendance, duplicate room number, ...).
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidTransition is returned when a state machine is asked for a
	// transition its current state does not permit.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrFeeInactive is returned when paying against a deactivated fee.
	ErrFeeInactive = errors.New("fee is not active")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// IsUniqueViolation reports whether err is a unique-constraint rejection
// from the database. Handlers that write single rows directly use it to
// map the raw driver error onto ErrDuplicate.
func IsUniqueViolation(err error) bool {
	return isUniqueViolation(err)
}

// isUniqueViolation reports whether err is a unique-constraint rejection
// from either supported dialect (postgres SQLSTATE 23505, sqlite message).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
