package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/noteshare/noteshare-server/internal/logger"
	"github.com/noteshare/noteshare-server/internal/model"
)

// dummyHash is compared against when the username does not exist, so a
// failed login costs the same whether or not the user is real.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("noteshare-no-such-user"), bcrypt.DefaultCost)

// Auth verifies credentials and manages session lifecycle.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	tokenManager model.TokenManager
	sessionTTL   time.Duration
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	tokenManager model.TokenManager,
	sessionTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		tokenManager: tokenManager,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// Authenticate verifies a username/password pair. Unknown username and
// wrong password both come back as ErrInvalidCredentials.
func (a *Auth) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		// Burn the same bcrypt cost as a real comparison.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, model.ErrInvalidCredentials
	}

	a.logger.Debug("Auth service: credentials verified",
		"username", username,
		"role", string(user.Role))

	return user, nil
}

// EstablishSession creates a server-side session for the user and returns
// the token to hand to the client.
func (a *Auth) EstablishSession(ctx context.Context, userID uuid.UUID) (string, error) {
	tokenString, sid, err := a.tokenManager.GenerateSessionToken(userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := model.Session{
		ID:        uuid.New(),
		SID:       sid,
		UserID:    userID,
		TokenHash: hashToken(tokenString),
		IssuedAt:  now,
		ExpiresAt: now.Add(a.sessionTTL),
	}

	if err := a.sessionStore.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	a.logger.Info("Auth service: session established",
		"user_id", userID.String(),
		"session_id", sid)

	return tokenString, nil
}

// Resolve maps a presented token back to the identity it was issued for.
// Missing, malformed, expired, and revoked tokens all come back as
// ErrUnauthenticated.
func (a *Auth) Resolve(ctx context.Context, tokenString string) (model.Identity, error) {
	userID, sid, err := a.tokenManager.ParseSessionToken(tokenString)
	if err != nil {
		return model.Identity{}, model.ErrUnauthenticated
	}

	session, err := a.sessionStore.GetBySID(ctx, sid)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to get session: %w", err)
	}

	if err := validateSession(session, hashToken(tokenString), time.Now()); err != nil {
		return model.Identity{}, model.ErrUnauthenticated
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return model.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// DestroySession revokes the presented session. It is idempotent: unknown,
// malformed, and already revoked tokens are accepted silently.
func (a *Auth) DestroySession(ctx context.Context, tokenString string) error {
	_, sid, err := a.tokenManager.ParseSessionToken(tokenString)
	if err != nil {
		return nil
	}

	if err := a.sessionStore.RevokeBySID(ctx, sid); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	a.logger.Info("Auth service: session destroyed", "session_id", sid)

	return nil
}

func hashToken(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateSession(s model.Session, presentedHash []byte, now time.Time) error {
	if s.RevokedAt != nil {
		return model.ErrUnauthenticated
	}
	if now.After(s.ExpiresAt) {
		return model.ErrUnauthenticated
	}
	if subtle.ConstantTimeCompare(s.TokenHash, presentedHash) != 1 {
		return model.ErrUnauthenticated
	}
	return nil
}
