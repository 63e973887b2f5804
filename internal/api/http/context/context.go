// Package context carries the resolved identity through the request
// context. Handlers read it from here instead of any ambient current-user
// state.
package context

import (
	"context"

	"github.com/noteshare/noteshare-server/internal/model"
)

type contextKey int

const identityKey contextKey = iota

// SetIdentity returns a context carrying the resolved identity.
func SetIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity returns the identity attached to the context, or nil when
// the request is anonymous.
func GetIdentity(ctx context.Context) *model.Identity {
	if identity, ok := ctx.Value(identityKey).(model.Identity); ok {
		return &identity
	}
	return nil
}
