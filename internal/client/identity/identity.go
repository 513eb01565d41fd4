// Package identity contains the client for the identity provider
// collaborator: sign-in, sign-out, and the current session state. The
// authenticated/unauthenticated mode can flip at any point between user
// actions, so capability checks must consult the provider every time instead
// of caching its answers.
package identity

import "context"

// Session is the provider's current view of who is acting. Username is only
// meaningful when Authenticated is true.
type Session struct {
	Authenticated bool
	Username      string
	Token         string
}

// Provider exposes the authentication operations the client depends on.
type Provider interface {
	// SignIn authenticates and establishes a session.
	SignIn(ctx context.Context, username, password string) (Session, error)

	// SignOut ends the current session. Signing out without a session is
	// a no-op.
	SignOut(ctx context.Context) error

	// Current returns the session state as of this call.
	Current() Session
}
