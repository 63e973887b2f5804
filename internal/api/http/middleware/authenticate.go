package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	httpctx "github.com/noteshare/noteshare-server/internal/api/http/context"
	"github.com/noteshare/noteshare-server/internal/logger"
	"github.com/noteshare/noteshare-server/internal/model"
)

// SessionResolver maps a session token to an identity.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate resolves the session cookie into an identity on the request
// context. Requests without a valid session pass through anonymous; the
// authorization decision belongs to the handlers.
type Authenticate struct {
	resolver   SessionResolver
	cookieName string
	logger     *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver SessionResolver, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, cookieName: cookieName, logger: logger}
}

// Handle reads the session cookie, resolves it, and attaches the identity
// to the request context.
func (m *Authenticate) Handle(c *gin.Context) {
	token, err := c.Cookie(m.cookieName)
	if err != nil || token == "" {
		c.Next()
		return
	}

	identity, err := m.resolver.Resolve(c.Request.Context(), token)
	if err != nil {
		m.logger.Debug("Authenticate middleware: session not resolved",
			"error", err.Error())
		c.Next()
		return
	}

	ctx := httpctx.SetIdentity(c.Request.Context(), identity)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
