package model

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a calendar event.
type EventType string

const (
	EventExam         EventType = "exam"
	EventHomework     EventType = "homework"
	EventSubstitution EventType = "substitution"
	EventOther        EventType = "other"
)

// Event is a calendar entry such as an exam or a homework deadline.
type Event struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	EventType   EventType `json:"event_type"`
	Subject     *string   `json:"subject,omitempty"`
	SchoolYear  *string   `json:"school_year,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateEventRequest is the payload for adding an event.
// end_date defaults to start_date when omitted.
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date" binding:"omitempty,gtefield=StartDate"`
	EventType   EventType  `json:"event_type" binding:"required,oneof=exam homework substitution other"`
	Subject     *string    `json:"subject" binding:"omitempty,max=100"`
	SchoolYear  *string    `json:"school_year" binding:"omitempty,len=9"`
}

// UpdateEventRequest is the payload for partially updating an event.
type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	StartDate   *time.Time `json:"start_date" binding:"omitempty"`
	EndDate     *time.Time `json:"end_date" binding:"omitempty"`
	EventType   *EventType `json:"event_type" binding:"omitempty,oneof=exam homework substitution other"`
	Subject     *string    `json:"subject" binding:"omitempty,max=100"`
	SchoolYear  *string    `json:"school_year" binding:"omitempty,len=9"`
}

// EventFilter narrows event listings. The date range is an inclusive
// window over start_date.
type EventFilter struct {
	SchoolYear string
	EventType  string
	Subject    string
	DateFrom   *time.Time
	DateTo     *time.Time
}
