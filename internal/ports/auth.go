package ports

// Package ports defines interfaces (hexagonal ports) for behavior provided
// by adapters. Implementations live in internal/adapters and
// internal/data/backend; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
)

// Credentials carries a username/password pair for backend login.
type Credentials struct {
	Username string
	Password string
}

// LoginResult is what a successful backend login yields: the
// authenticated identity plus the backend's own session cookie, which
// must be replayed on subsequent backend calls.
type LoginResult struct {
	Identity      domainauth.Identity
	BackendCookie string
}

// CredentialAuthenticator authenticates against the catalog backend's
// cookie-session endpoints.
type CredentialAuthenticator interface {
	// Login posts credentials and, when accepted, resolves the caller's
	// identity via the who-am-I endpoint.
	Login(ctx context.Context, creds Credentials) (LoginResult, error)

	// Validate re-checks an existing backend session cookie and returns
	// the current identity. A rejected or expired cookie yields an error.
	Validate(ctx context.Context, backendCookie string) (domainauth.Identity, error)

	// Logout tears down the backend session. Best effort.
	Logout(ctx context.Context, backendCookie string) error
}

// SessionStore persists and retrieves dashboard sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error

	// List returns all live sessions, for periodic revalidation sweeps.
	List(ctx context.Context) ([]domainauth.Session, error)
}
