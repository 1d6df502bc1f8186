package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeType classifies how a grade was earned.
type GradeType string

const (
	GradeWritten   GradeType = "written"
	GradeOral      GradeType = "oral"
	GradePractical GradeType = "practical"
)

// Grade is a single mark a student received in a subject.
type Grade struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Subject    string    `json:"subject"`
	Value      float64   `json:"value"`
	Date       time.Time `json:"date"`
	GradeType  GradeType `json:"grade_type"`
	Weight     float64   `json:"weight"`
	Notes      string    `json:"notes"`
	SchoolYear string    `json:"school_year"`
	Semester   *int      `json:"semester,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateGradeRequest is the payload for recording a grade.
// Weight defaults to 1.0 and school_year to the owner's current year.
// Value is a pointer so that a grade of 0 survives the required check.
type CreateGradeRequest struct {
	Subject    string    `json:"subject" binding:"required,min=1,max=100"`
	Value      *float64  `json:"value" binding:"required,gte=0,lte=10"`
	Date       time.Time `json:"date" binding:"required"`
	GradeType  GradeType `json:"grade_type" binding:"required,oneof=written oral practical"`
	Weight     float64   `json:"weight" binding:"omitempty,gt=0,lte=10"`
	Notes      string    `json:"notes" binding:"omitempty,max=500"`
	SchoolYear string    `json:"school_year" binding:"omitempty,len=9"`
	Semester   *int      `json:"semester" binding:"omitempty,oneof=1 2"`
}

// UpdateGradeRequest is the payload for partially updating a grade.
// Absent fields keep their stored values.
type UpdateGradeRequest struct {
	Subject    *string    `json:"subject" binding:"omitempty,min=1,max=100"`
	Value      *float64   `json:"value" binding:"omitempty,gte=0,lte=10"`
	Date       *time.Time `json:"date" binding:"omitempty"`
	GradeType  *GradeType `json:"grade_type" binding:"omitempty,oneof=written oral practical"`
	Weight     *float64   `json:"weight" binding:"omitempty,gt=0,lte=10"`
	Notes      *string    `json:"notes" binding:"omitempty,max=500"`
	SchoolYear *string    `json:"school_year" binding:"omitempty,len=9"`
	Semester   *int       `json:"semester" binding:"omitempty,oneof=1 2"`
}

// GradeFilter narrows grade listings. Zero values mean "no filter".
type GradeFilter struct {
	SchoolYear string
	Subject    string
	GradeType  string
	Semester   *int
	DateFrom   *time.Time
	DateTo     *time.Time
}
