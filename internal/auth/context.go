package auth

import (
	"context"

	"github.com/google/uuid"
)

// ctxKey is an unexported type so no other package can collide with our
// context keys.
type ctxKey struct{}

// WithUserID returns a child context carrying the authenticated user's ID.
// The auth middleware calls this after verifying the bearer token.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserID extracts the authenticated user's ID from the context.
// ok is false on requests that never passed through the auth middleware
// (public endpoints, or a wiring mistake).
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	return id, ok
}
