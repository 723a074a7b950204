package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
	apperrors "github.com/manytooh/catalog-admin/internal/errors"
	"github.com/manytooh/catalog-admin/internal/ports"
)

const defaultSessionTTL = 12 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.CredentialAuthenticator
	Sessions      ports.SessionStore
	SessionTTL    time.Duration
	Logger        *slog.Logger
}

// AuthService orchestrates login, logout, and session revalidation by
// coordinating the backend authenticator and session persistence.
type AuthService struct {
	auth     ports.CredentialAuthenticator
	sessions ports.SessionStore
	ttl      time.Duration
	logger   *slog.Logger
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		auth:     opts.Authenticator,
		sessions: opts.Sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// Login authenticates credentials against the backend and establishes a
// dashboard session. Bad credentials come back as a validation error
// whose message is meant for the login form verbatim.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if creds.Username == "" {
		return nil, apperrors.ValidationField("username", "username is required")
	}
	if creds.Password == "" {
		return nil, apperrors.ValidationField("password", "password is required")
	}

	result, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := domainauth.Session{
		ID:              generateSessionID(),
		UserID:          result.Identity.UserID,
		Username:        result.Identity.Username,
		Role:            result.Identity.Role,
		BackendCookie:   result.BackendCookie,
		ExpiresAt:       now.Add(s.ttl),
		LastValidatedAt: now,
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	s.logger.InfoContext(ctx, "session established",
		"user_id", session.UserID, "role", session.Role)
	return &session, nil
}

// GetSession retrieves a session by ID, evicting it when expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout clears the dashboard session and tears down the backend session
// behind it. Backend teardown is best effort; the dashboard session is
// removed regardless.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if session, err := s.sessions.Get(ctx, sessionID); err == nil {
		if logoutErr := s.auth.Logout(ctx, session.BackendCookie); logoutErr != nil {
			s.logger.WarnContext(ctx, "backend logout failed", "error", logoutErr)
		}
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// RevalidateSession re-checks a session's backend cookie against the
// who-am-I endpoint. On success the session is re-saved with refreshed
// identity fields. On failure the backend session is torn down best
// effort and the dashboard session evicted, so the next request lands on
// the login page. A canceled context leaves the session untouched.
func (s *AuthService) RevalidateSession(ctx context.Context, session domainauth.Session) (*domainauth.Session, error) {
	identity, err := s.auth.Validate(ctx, session.BackendCookie)
	if err != nil {
		if apperrors.IsCanceled(err) {
			return nil, err
		}

		s.logger.InfoContext(ctx, "session failed revalidation, signing out",
			"session_id", session.ID, "user_id", session.UserID, "error", err)
		if logoutErr := s.auth.Logout(ctx, session.BackendCookie); logoutErr != nil {
			s.logger.DebugContext(ctx, "backend logout failed", "error", logoutErr)
		}
		if deleteErr := s.sessions.Delete(ctx, session.ID); deleteErr != nil {
			s.logger.WarnContext(ctx, "evict session failed", "session_id", session.ID, "error", deleteErr)
		}
		return nil, err
	}

	session.UserID = identity.UserID
	session.Username = identity.Username
	session.Role = identity.Role
	session.LastValidatedAt = time.Now()
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save revalidated session: %w", saveErr)
	}
	return &session, nil
}

// EnsureValidated returns the session as-is once it has survived at least
// one revalidation cycle, and performs one inline cycle otherwise. This
// keeps protected pages from rendering before the first backend check.
func (s *AuthService) EnsureValidated(ctx context.Context, session domainauth.Session) (*domainauth.Session, error) {
	if session.Validated() {
		return &session, nil
	}
	return s.RevalidateSession(ctx, session)
}

// RevalidateAll sweeps every live session once. Individual failures are
// already handled by RevalidateSession; the sweep keeps going and only
// reports errors that stopped it outright.
func (s *AuthService) RevalidateAll(ctx context.Context) error {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	for _, session := range sessions {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := s.RevalidateSession(ctx, session); err != nil && apperrors.IsCanceled(err) {
			return err
		}
	}
	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
