package http

import (
	"context"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "user-id"
	userRoleKey contextKey = "user-role"
)

// Caller identifies the authenticated principal of a request.
type Caller struct {
	ID   string
	Role domain.Role
}

func withCaller(ctx context.Context, id string, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	return context.WithValue(ctx, userRoleKey, role)
}

// CallerFromContext extracts the authenticated caller set by the auth
// middleware. ok is false on unauthenticated requests.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return Caller{}, false
	}
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	if !ok {
		return Caller{}, false
	}
	return Caller{ID: id, Role: role}, true
}
