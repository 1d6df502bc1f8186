package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleItem is one slot of the weekly timetable. Day is Monday-based
// (0 = Monday, 6 = Sunday), Hour is the lesson number starting at 1.
// A user has at most one item per (day, hour, school_year).
type ScheduleItem struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Day        int       `json:"day"`
	Hour       int       `json:"hour"`
	Subject    string    `json:"subject"`
	Teacher    string    `json:"teacher"`
	Classroom  string    `json:"classroom"`
	SchoolYear string    `json:"school_year"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateScheduleItemRequest is the payload for adding a timetable slot.
// Posting an already occupied (day, hour, school_year) slot replaces it.
type CreateScheduleItemRequest struct {
	Day        *int   `json:"day" binding:"required,gte=0,lte=6"`
	Hour       int    `json:"hour" binding:"required,gte=1,lte=12"`
	Subject    string `json:"subject" binding:"required,min=1,max=100"`
	Teacher    string `json:"teacher" binding:"omitempty,max=100"`
	Classroom  string `json:"classroom" binding:"omitempty,max=50"`
	SchoolYear string `json:"school_year" binding:"omitempty,len=9"`
}

// UpdateScheduleItemRequest is the payload for partially updating a slot.
type UpdateScheduleItemRequest struct {
	Day        *int    `json:"day" binding:"omitempty,gte=0,lte=6"`
	Hour       *int    `json:"hour" binding:"omitempty,gte=1,lte=12"`
	Subject    *string `json:"subject" binding:"omitempty,min=1,max=100"`
	Teacher    *string `json:"teacher" binding:"omitempty,max=100"`
	Classroom  *string `json:"classroom" binding:"omitempty,max=50"`
	SchoolYear *string `json:"school_year" binding:"omitempty,len=9"`
}

// ScheduleFilter narrows schedule listings.
type ScheduleFilter struct {
	SchoolYear string
	Day        *int
}
