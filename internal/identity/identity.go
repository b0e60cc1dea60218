// Package identity defines who is making a request. The engine only needs
// an id and a role; authentication itself is a collaborator concern.
package identity

import "context"

// Role distinguishes students from curriculum administrators.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is an authenticated principal.
type User struct {
	ID   string
	Role Role
}

type contextKey struct{}

// WithUser attaches the authenticated user to the context.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext extracts the authenticated user, if any.
func FromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(contextKey{}).(User)
	return u, ok
}
