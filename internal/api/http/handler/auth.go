package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httpctx "github.com/noteshare/noteshare-server/internal/api/http/context"
	"github.com/noteshare/noteshare-server/internal/logger"
	"github.com/noteshare/noteshare-server/internal/model"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "noteshare_session"

// AuthService defines credential verification and session lifecycle
// operations.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (model.User, error)
	EstablishSession(ctx context.Context, userID uuid.UUID) (string, error)
	DestroySession(ctx context.Context, token string) error
}

// CookieConfig controls how the session cookie is delivered.
type CookieConfig struct {
	MaxAge int
	Secure bool
}

// Auth handles HTTP endpoints for login and logout.
type Auth struct {
	authService AuthService
	cookie      CookieConfig
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, cookie CookieConfig, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login verifies credentials and sets the session cookie. The failure
// response is the same whether the username or the password was wrong.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "username and password are required"})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	token, err := h.authService.EstablishSession(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Auth handler: failed to establish session",
			"username", user.Username,
			"error", err.Error())
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, sessionResponse{
		Username: user.Username,
		Role:     string(user.Role),
	})
}

// Logout revokes the presented session and clears the cookie. Idempotent:
// a request without a valid session still gets 204.
func (h *Auth) Logout(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err == nil && token != "" {
		if err := h.authService.DestroySession(c.Request.Context(), token); err != nil {
			h.logger.Error("Auth handler: failed to destroy session",
				"error", err.Error())
			status, body := mapError(err)
			c.JSON(status, body)
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", h.cookie.Secure, true)

	c.Status(http.StatusNoContent)
}

// Current returns the identity bound to the session, so presentation can
// pick the student or admin view.
func (h *Auth) Current(c *gin.Context) {
	identity := httpctx.GetIdentity(c.Request.Context())
	if identity == nil {
		status, body := mapError(model.ErrUnauthenticated)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		Username: identity.Username,
		Role:     string(identity.Role),
	})
}
