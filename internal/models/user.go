// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account with email-verification state. The
// verification code is issued at registration and cleared once consumed.
type User struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"` // Never serialize the hash
	RoleID           uuid.UUID `json:"role_id"`
	VerificationCode *string   `json:"-"` // Nullable; cleared after verification
	IsVerified       bool      `json:"is_verified"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Role is a named permission group. The two privileged roles gate
// section-template mutations.
type Role struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
