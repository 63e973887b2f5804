package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists server-side session state. The session row is the
// source of truth for expiry and revocation; the cookie only identifies it.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	GetBySID(ctx context.Context, sid string) (Session, error)
	RevokeBySID(ctx context.Context, sid string) error
}

// Session describes an established login session.
type Session struct {
	ID        uuid.UUID
	SID       string
	UserID    uuid.UUID
	TokenHash []byte
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// TokenManager generates and validates session tokens.
type TokenManager interface {
	GenerateSessionToken(userID uuid.UUID) (token string, sid string, err error)
	ParseSessionToken(token string) (userID uuid.UUID, sid string, err error)
}
