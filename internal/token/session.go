package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/noteshare/noteshare-server/internal/model"
)

// Claims represents session token claims with token type and user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC. The token carries a
// random session ID in the JTI claim; validity beyond the signature and
// expiry (revocation, hash match) is checked against the session store.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a new session token manager with the provided secret key
// and session lifetime.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	return &JWT{secretKey: secretKey, ttl: ttl}
}

const typeSession = "session"

// sidBytes is the session ID entropy in bytes. 16 bytes gives 128 bits.
const sidBytes = 16

func newSID() (string, error) {
	b := make([]byte, sidBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionToken creates a signed session token and returns it with
// its session ID.
func (j *JWT) GenerateSessionToken(userID uuid.UUID) (string, string, error) {
	sid, err := newSID()
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID:    userID,
		TokenType: typeSession,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, sid, nil
}

// ParseSessionToken validates and extracts the user ID and session ID from
// a session token.
func (j *JWT) ParseSessionToken(tokenString string) (uuid.UUID, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, "", fmt.Errorf("session token is invalid")
	}
	if claims.TokenType != typeSession {
		return uuid.Nil, "", fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	if claims.ID == "" {
		return uuid.Nil, "", fmt.Errorf("session token has no session id")
	}
	return claims.UserID, claims.ID, nil
}
