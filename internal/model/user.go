package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolYearContext maps context labels to school years. The only key in
// use today is "current", e.g. {"current": "2025-2026"}; the map shape is
// kept so future contexts (previous years, exchange programs) need no
// schema change.
type SchoolYearContext map[string]string

// User represents an account owning grades, schedule items and events.
type User struct {
	ID           uuid.UUID         `json:"id"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"-"`
	Name         string            `json:"name"`
	SchoolYear   SchoolYearContext `json:"school_year"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// CurrentSchoolYear returns the user's current school year, or "" when the
// context has never been set.
func (u *User) CurrentSchoolYear() string {
	if u.SchoolYear == nil {
		return ""
	}
	return u.SchoolYear["current"]
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email,max=254"`
	Password   string `json:"password" binding:"required,min=6,max=128"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	SchoolYear string `json:"school_year" binding:"omitempty,len=9"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the payload for rotating a password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=128"`
}

// UpdateProfileRequest is the payload for partial profile updates.
type UpdateProfileRequest struct {
	Name       *string           `json:"name" binding:"omitempty,min=2,max=100"`
	SchoolYear SchoolYearContext `json:"school_year" binding:"omitempty"`
}

// AuthResponse is returned after successful registration or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
