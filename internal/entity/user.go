package entity

import (
	"context"
	"strings"
)

// UserID identifies a logical user boundary across handlers and stores.
// The upstream auth proxy owns credentials; by the time a request reaches
// this service the identity is already established.
type UserID string

func NormalizeUserID(raw string) UserID {
	return UserID(strings.TrimSpace(raw))
}

func (id UserID) String() string {
	return strings.TrimSpace(string(id))
}

func (id UserID) IsZero() bool {
	return id.String() == ""
}

type userKey struct{}

// WithUser attaches the authenticated user to the request context.
func WithUser(ctx context.Context, id UserID) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// UserFrom returns the authenticated user, or a zero UserID when absent.
func UserFrom(ctx context.Context) UserID {
	id, _ := ctx.Value(userKey{}).(UserID)
	return id
}
