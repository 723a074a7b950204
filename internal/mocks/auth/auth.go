package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialAuthenticator = (*MockAuthenticator)(nil)
	_ ports.SessionStore            = (*MemorySessionStore)(nil)
)

// MockAuthenticator simulates the backend's session endpoints for tests.
// Unset func fields fall back to deterministic defaults keyed off
// DefaultIdentity and DefaultCookie.
type MockAuthenticator struct {
	LoginFunc    func(ctx context.Context, creds ports.Credentials) (ports.LoginResult, error)
	ValidateFunc func(ctx context.Context, backendCookie string) (domainauth.Identity, error)
	LogoutFunc   func(ctx context.Context, backendCookie string) error

	DefaultIdentity domainauth.Identity
	DefaultCookie   string

	mu          sync.Mutex
	LoginCalls  int
	LogoutCalls int
}

// NewMockAuthenticator creates a MockAuthenticator with sensible defaults.
func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{
		DefaultIdentity: domainauth.Identity{
			UserID:   "mock-user-1",
			Username: "mockuser",
			Role:     domainauth.RoleAdmin,
		},
		DefaultCookie: "connect.sid=mock-backend-session",
	}
}

func (m *MockAuthenticator) Login(ctx context.Context, creds ports.Credentials) (ports.LoginResult, error) {
	m.mu.Lock()
	m.LoginCalls++
	m.mu.Unlock()

	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return ports.LoginResult{Identity: m.DefaultIdentity, BackendCookie: m.DefaultCookie}, nil
}

func (m *MockAuthenticator) Validate(ctx context.Context, backendCookie string) (domainauth.Identity, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, backendCookie)
	}
	if backendCookie != m.DefaultCookie {
		return domainauth.Identity{}, errors.New("unknown backend cookie")
	}
	return m.DefaultIdentity, nil
}

func (m *MockAuthenticator) Logout(ctx context.Context, backendCookie string) error {
	m.mu.Lock()
	m.LogoutCalls++
	m.mu.Unlock()

	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, backendCookie)
	}
	return nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemorySessionStore) List(_ context.Context) ([]domainauth.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domainauth.Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		out = append(out, sess)
	}
	return out, nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}
