package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account, including credentials and profile.
// Secret fields are never serialised into API responses.
type User struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	FirstName      string     `json:"firstname" db:"first_name"`
	LastName       string     `json:"lastname" db:"last_name"`
	Email          string     `json:"email" db:"email"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	Role           string     `json:"role" db:"role"`
	Avatar         string     `json:"avatar,omitempty" db:"avatar"`
	ResetToken     string     `json:"-" db:"reset_token"`
	ResetExpiresAt *time.Time `json:"-" db:"reset_expires_at"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

// UpdateUserRequest carries the mutable profile fields. Password is optional;
// when present it must pass the same length rule as registration.
type UpdateUserRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Password  string `json:"password"`
}
