package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the coarse permission tier assigned to a user.
type Role string

const (
	// RoleAdmin may manage uploads in addition to viewing notes.
	RoleAdmin Role = "admin"
	// RoleStudent may only view notes.
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known tiers.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
// PasswordHash is a bcrypt hash; the plaintext password is never stored.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the resolved authenticated principal attached to a request.
// It carries only what authorization decisions need.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}
