package models

import (
	"context"
	"slices"

	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
)

// Session holds the bearer credential and the small set of user
// attributes persisted between requests. Absence of a session means
// "not logged in", never an error.
type Session struct {
	Token        string
	RefreshToken string
	Roles        []string
	Email        string
}

// anonymous is the shared sentinel for an absent session.
var anonymous = &Session{}

func AnonymousSession() *Session {
	return anonymous
}

func (s *Session) IsAnonymous() bool {
	return s == nil || s.Token == ""
}

// HasRole reports whether the session carries the given role.
func (s *Session) HasRole(role types.UserRole) bool {
	if s.IsAnonymous() {
		return false
	}
	return slices.Contains(s.Roles, string(role))
}

type sessionCtxKey struct{}

// WithSession injects the session into the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext returns the session stored in the context, or nil.
func SessionFromContext(ctx context.Context) *Session {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	if !ok {
		return nil
	}
	return s
}
