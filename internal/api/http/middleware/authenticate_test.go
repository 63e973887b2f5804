package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/noteshare/noteshare-server/internal/api/http/context"
	"github.com/noteshare/noteshare-server/internal/model"
	"github.com/noteshare/noteshare-server/internal/testutil"
)

const testCookie = "test_session"

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, token string) (model.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Identity), args.Error(1)
}

func performRequest(t *testing.T, m *Authenticate, cookie string) *model.Identity {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured *model.Identity
	engine := gin.New()
	engine.Use(m.Handle)
	engine.GET("/probe", func(c *gin.Context) {
		captured = httpctx.GetIdentity(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	return captured
}

func TestAuthenticate_ValidCookie(t *testing.T) {
	resolver := &MockResolver{}
	identity := model.Identity{UserID: uuid.New(), Username: "admin", Role: model.RoleAdmin}
	resolver.On("Resolve", mock.Anything, "tok").Return(identity, nil)

	m := NewAuthenticate(resolver, testCookie, testutil.MakeNoopLogger())

	got := performRequest(t, m, "tok")
	require.NotNil(t, got)
	assert.Equal(t, identity, *got)
}

func TestAuthenticate_NoCookie(t *testing.T) {
	resolver := &MockResolver{}
	m := NewAuthenticate(resolver, testCookie, testutil.MakeNoopLogger())

	got := performRequest(t, m, "")
	assert.Nil(t, got)
	resolver.AssertNotCalled(t, "Resolve")
}

func TestAuthenticate_InvalidSession(t *testing.T) {
	resolver := &MockResolver{}
	resolver.On("Resolve", mock.Anything, "stale").Return(model.Identity{}, errors.New("session expired"))

	m := NewAuthenticate(resolver, testCookie, testutil.MakeNoopLogger())

	// An unresolvable session degrades to anonymous rather than failing
	// the request; the handlers decide what anonymous may do.
	got := performRequest(t, m, "stale")
	assert.Nil(t, got)
}
