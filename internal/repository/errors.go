package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the given owner and id.
	// Records owned by another user are indistinguishable from missing ones.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrSlotTaken is returned when an update would move a schedule item
	// onto an already occupied (day, hour, school_year) slot.
	ErrSlotTaken = errors.New("schedule slot already occupied")
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"
