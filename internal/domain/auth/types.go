package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleGuest Role = "guest"
)

// Identity represents the authenticated principal as reported by the
// catalog backend's who-am-I endpoint. The backend emits either a
// user_id or a staff_id depending on the account kind; adapters
// normalize both into UserID.
type Identity struct {
	UserID   string
	Username string
	Role     Role
}

// Session is the server-side record persisted for a signed-in browser.
// ID is an opaque session identifier (random URL-safe string).
// BackendCookie holds the catalog backend's own session cookie, replayed
// on every backend call made on this session's behalf.
type Session struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Username        string    `json:"username"`
	Role            Role      `json:"role"`
	BackendCookie   string    `json:"backend_cookie"`
	ExpiresAt       time.Time `json:"expires_at"`
	LastValidatedAt time.Time `json:"last_validated_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// Validated reports whether the session has completed at least one
// successful backend revalidation since it was established.
func (s Session) Validated() bool { return !s.LastValidatedAt.IsZero() }
