package backend

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
	apperrors "github.com/manytooh/catalog-admin/internal/errors"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// fakeBackend mimics the catalog backend's session endpoints.
type fakeBackend struct {
	mux        *http.ServeMux
	whoAmIBody string
	loginFails bool
}

func newFakeBackend(whoAmIBody string) *fakeBackend {
	f := &fakeBackend{mux: http.NewServeMux(), whoAmIBody: whoAmIBody}

	f.mux.HandleFunc("POST /api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		if f.loginFails {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":{"incorrect":"Incorrect username or password!"}}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "connect.sid", Value: "backend-session"})
		_, _ = w.Write([]byte(`{}`))
	})
	f.mux.HandleFunc("GET /api/v1/users/authenticate", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "connect.sid=backend-session" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(f.whoAmIBody))
	})
	f.mux.HandleFunc("POST /api/v1/users/logout", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	return f
}

func newTestAuthenticator(t *testing.T, f *fakeBackend) *Authenticator {
	t.Helper()
	client, _ := newTestClient(t, f.mux)
	auth, err := NewAuthenticator(client, IdentityExprs{})
	require.NoError(t, err)
	return auth
}

func TestNewAuthenticatorRejectsBadExpression(t *testing.T) {
	client, _ := newTestClient(t, http.NewServeMux())
	_, err := NewAuthenticator(client, IdentityExprs{UserID: "[invalid"})
	assert.Error(t, err)
}

func TestLoginEstablishesIdentity(t *testing.T) {
	f := newFakeBackend(`{"user_id": 42, "role": "admin", "username": "alice"}`)
	auth := newTestAuthenticator(t, f)

	res, err := auth.Login(context.Background(), ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "connect.sid=backend-session", res.BackendCookie)
	assert.Equal(t, "42", res.Identity.UserID)
	assert.Equal(t, domainauth.RoleAdmin, res.Identity.Role)
	assert.Equal(t, "alice", res.Identity.Username)
}

func TestLoginFallsBackToStaffID(t *testing.T) {
	f := newFakeBackend(`{"staff_id": "staff-7", "role": "Admin", "username": "bob"}`)
	auth := newTestAuthenticator(t, f)

	res, err := auth.Login(context.Background(), ports.Credentials{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "staff-7", res.Identity.UserID)
	// Roles are normalized to lower case.
	assert.Equal(t, domainauth.RoleAdmin, res.Identity.Role)
}

func TestLoginSurfacesIncorrectCredentialsVerbatim(t *testing.T) {
	f := newFakeBackend(`{}`)
	f.loginFails = true
	auth := newTestAuthenticator(t, f)

	_, err := auth.Login(context.Background(), ports.Credentials{Username: "alice", Password: "bad"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Incorrect username or password!", appErr.Message)
}

func TestValidateRejectsStaleCookie(t *testing.T) {
	f := newFakeBackend(`{"user_id": 1, "role": "admin", "username": "alice"}`)
	auth := newTestAuthenticator(t, f)

	_, err := auth.Validate(context.Background(), "connect.sid=stale")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestValidateRequiresIdentityFields(t *testing.T) {
	f := newFakeBackend(`{"role": "admin"}`)
	auth := newTestAuthenticator(t, f)

	_, err := auth.Validate(context.Background(), "connect.sid=backend-session")
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestLogoutBestEffort(t *testing.T) {
	f := newFakeBackend(`{}`)
	auth := newTestAuthenticator(t, f)

	assert.NoError(t, auth.Logout(context.Background(), "connect.sid=backend-session"))
	assert.NoError(t, auth.Logout(context.Background(), ""))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "42", stringify(float64(42)))
	assert.Equal(t, "4.5", stringify(4.5))
	assert.Equal(t, "x", stringify("x"))
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, "", stringify(nil))
	assert.Equal(t, "", stringify([]any{"no"}))
}
