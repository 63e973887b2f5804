package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/noteshare/noteshare-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	const query = `
        INSERT INTO sessions (id, sid, user_id, token_hash, issued_at, expires_at, revoked_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx, query,
		session.ID, session.SID, session.UserID, session.TokenHash,
		session.IssuedAt, session.ExpiresAt, session.RevokedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetBySID(ctx context.Context, sid string) (model.Session, error) {
	const query = `
        SELECT id, sid, user_id, token_hash, issued_at, expires_at, revoked_at
        FROM sessions WHERE sid = $1
    `
	var s model.Session
	err := r.db.QueryRow(ctx, query, sid).Scan(
		&s.ID, &s.SID, &s.UserID, &s.TokenHash,
		&s.IssuedAt, &s.ExpiresAt, &s.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by sid: %w", err)
	}
	return s, nil
}

// RevokeBySID marks the session revoked. Revoking an unknown or already
// revoked session is a no-op, which keeps logout idempotent.
func (r *SessionRepository) RevokeBySID(ctx context.Context, sid string) error {
	const query = `
        UPDATE sessions SET revoked_at = NOW()
        WHERE sid = $1 AND revoked_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, sid); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
