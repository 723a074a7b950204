package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
	apperrors "github.com/manytooh/catalog-admin/internal/errors"
	mockauth "github.com/manytooh/catalog-admin/internal/mocks/auth"
	"github.com/manytooh/catalog-admin/internal/ports"
)

func newAuthService() (*mockauth.MockAuthenticator, *mockauth.MemorySessionStore, *AuthService) {
	authenticator := mockauth.NewMockAuthenticator()
	store := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      store,
		SessionTTL:    time.Hour,
	})
	return authenticator, store, svc
}

func TestLoginEstablishesSession(t *testing.T) {
	_, store, svc := newAuthService()
	ctx := context.Background()

	session, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	// Session IDs are opaque UUIDs.
	_, parseErr := uuid.Parse(session.ID)
	assert.NoError(t, parseErr)

	assert.Equal(t, "mock-user-1", session.UserID)
	assert.Equal(t, "mockuser", session.Username)
	assert.Equal(t, domainauth.RoleAdmin, session.Role)
	assert.Equal(t, "connect.sid=mock-backend-session", session.BackendCookie)
	assert.True(t, session.Validated())

	stored, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, stored.UserID)
}

func TestLoginRequiresCredentials(t *testing.T) {
	_, _, svc := newAuthService()

	_, err := svc.Login(context.Background(), ports.Credentials{Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, "username", apperrors.GetField(err))

	_, err = svc.Login(context.Background(), ports.Credentials{Username: "alice"})
	require.Error(t, err)
	assert.Equal(t, "password", apperrors.GetField(err))
}

func TestLoginPassesThroughBackendRejection(t *testing.T) {
	authenticator, store, svc := newAuthService()
	authenticator.LoginFunc = func(ctx context.Context, creds ports.Credentials) (ports.LoginResult, error) {
		return ports.LoginResult{}, apperrors.Validation("Incorrect username or password!")
	}

	_, err := svc.Login(context.Background(), ports.Credentials{Username: "alice", Password: "bad"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, store.Len())
}

func TestGetSessionEvictsExpired(t *testing.T) {
	_, store, svc := newAuthService()
	ctx := context.Background()

	expired := domainauth.Session{
		ID:       "expired",
		UserID:   "u-1",
		Username: "alice",
		Role:     domainauth.RoleAdmin,

		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, store.Save(ctx, expired))

	_, err := svc.GetSession(ctx, "expired")
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestLogoutClearsSessionAndBackend(t *testing.T) {
	authenticator, store, svc := newAuthService()
	ctx := context.Background()

	session, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.ID))
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1, authenticator.LogoutCalls)
}

func TestLogoutIgnoresBackendFailure(t *testing.T) {
	authenticator, store, svc := newAuthService()
	ctx := context.Background()

	session, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	authenticator.LogoutFunc = func(ctx context.Context, backendCookie string) error {
		return errors.New("backend down")
	}

	require.NoError(t, svc.Logout(ctx, session.ID))
	assert.Equal(t, 0, store.Len())
}

func TestLogoutEmptyIDIsNoop(t *testing.T) {
	_, _, svc := newAuthService()
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestRevalidateSessionRefreshesIdentity(t *testing.T) {
	authenticator, store, svc := newAuthService()
	ctx := context.Background()

	session, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	authenticator.DefaultIdentity.Username = "renamed"
	updated, err := svc.RevalidateSession(ctx, *session)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.False(t, updated.LastValidatedAt.Before(session.LastValidatedAt))

	stored, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Username)
}

func TestRevalidateSessionEvictsOnFailure(t *testing.T) {
	authenticator, store, svc := newAuthService()
	ctx := context.Background()

	session, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	authenticator.ValidateFunc = func(ctx context.Context, backendCookie string) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Unauthorized("backend session is not valid")
	}

	_, err = svc.RevalidateSession(ctx, *session)
	require.Error(t, err)

	// Session evicted, backend logout attempted best effort.
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1, authenticator.LogoutCalls)
}

func TestRevalidateSessionEvictsOnNetworkError(t *testing.T) {
	authenticator, store, svc := newAuthService()
	ctx := context.Background()

	session, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	authenticator.ValidateFunc = func(ctx context.Context, backendCookie string) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Upstream("catalog backend unreachable")
	}

	_, err = svc.RevalidateSession(ctx, *session)
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestRevalidateSessionSparesSessionOnCancel(t *testing.T) {
	authenticator, store, svc := newAuthService()
	ctx := context.Background()

	session, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	authenticator.ValidateFunc = func(ctx context.Context, backendCookie string) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Wrap(context.Canceled, apperrors.ErrCodeCanceled, "request canceled")
	}

	_, err = svc.RevalidateSession(ctx, *session)
	require.Error(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestEnsureValidatedSkipsFreshSession(t *testing.T) {
	authenticator, _, svc := newAuthService()
	ctx := context.Background()

	session, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	authenticator.ValidateFunc = func(ctx context.Context, backendCookie string) (domainauth.Identity, error) {
		t.Fatal("validated session should not be re-checked inline")
		return domainauth.Identity{}, nil
	}

	got, err := svc.EnsureValidated(ctx, *session)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestEnsureValidatedRunsInlineCycle(t *testing.T) {
	_, store, svc := newAuthService()
	ctx := context.Background()

	unvalidated := domainauth.Session{
		ID:            "fresh",
		UserID:        "u-1",
		Username:      "alice",
		Role:          domainauth.RoleAdmin,
		BackendCookie: "connect.sid=mock-backend-session",
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, unvalidated))

	got, err := svc.EnsureValidated(ctx, unvalidated)
	require.NoError(t, err)
	assert.True(t, got.Validated())
}

func TestRevalidateAllSweepsEverySession(t *testing.T) {
	authenticator, store, svc := newAuthService()
	ctx := context.Background()

	for range 3 {
		_, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
		require.NoError(t, err)
	}

	var checked int
	authenticator.ValidateFunc = func(ctx context.Context, backendCookie string) (domainauth.Identity, error) {
		checked++
		if checked == 2 {
			return domainauth.Identity{}, apperrors.Unauthorized("revoked")
		}
		return authenticator.DefaultIdentity, nil
	}

	require.NoError(t, svc.RevalidateAll(ctx))
	assert.Equal(t, 3, checked)
	assert.Equal(t, 2, store.Len())
}
