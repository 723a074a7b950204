package httpx

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
)

// stubAuthService serves canned sessions for middleware tests.
type stubAuthService struct {
	sessions map[string]*domainauth.Session
}

func (s *stubAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		copied := *sess
		return &copied, nil
	}
	return nil, errors.New("session not found")
}

func (s *stubAuthService) EnsureValidated(_ context.Context, session domainauth.Session) (*domainauth.Session, error) {
	return &session, nil
}

func stubAuthWithSession(role domainauth.Role) *stubAuthService {
	return &stubAuthService{
		sessions: map[string]*domainauth.Session{
			"sess-1": {
				ID:              "sess-1",
				UserID:          "u-1",
				Username:        "pat",
				Role:            role,
				BackendCookie:   "connect.sid=abc",
				ExpiresAt:       time.Now().Add(time.Hour),
				LastValidatedAt: time.Now(),
			},
		},
	}
}

func browserRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Accept", "text/html")
	return r
}

func withSessionCookie(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
	return r
}

func TestRequireRoleBrowserRedirectsAnonymousToLogin(t *testing.T) {
	handler := RequireRoleBrowser(stubAuthWithSession(domainauth.RoleAdmin), domainauth.RoleAdmin)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("next should not run") }),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, browserRequest(http.MethodGet, "/brands?page=2"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fbrands%3Fpage%3D2", w.Header().Get("Location"))
}

func TestRequireRoleBrowserHTMXRedirect(t *testing.T) {
	handler := RequireRoleBrowser(stubAuthWithSession(domainauth.RoleAdmin), domainauth.RoleAdmin)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("next should not run") }),
	)

	r := browserRequest(http.MethodGet, "/brands")
	r.Header.Set("Hx-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fbrands", w.Header().Get("Hx-Redirect"))
}

func TestRequireRoleBrowserInsufficientRole(t *testing.T) {
	handler := RequireRoleBrowser(stubAuthWithSession(domainauth.RoleStaff), domainauth.RoleAdmin)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("next should not run") }),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, withSessionCookie(browserRequest(http.MethodGet, "/brands")))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRequireRoleBrowserAllowsSufficientRole(t *testing.T) {
	var gotSession *domainauth.Session
	handler := RequireRoleBrowser(stubAuthWithSession(domainauth.RoleAdmin), domainauth.RoleStaff)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSession = GetSessionFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, withSessionCookie(browserRequest(http.MethodGet, "/brands")))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotSession)
	assert.Equal(t, "pat", gotSession.Username)
	assert.Equal(t, domainauth.RoleAdmin, gotSession.Role)
}

func TestRequireAuthBrowserAPIRequestGets401(t *testing.T) {
	handler := RequireAuthBrowser(&stubAuthService{})(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("next should not run") }),
	)

	r := httptest.NewRequest(http.MethodGet, "/api/whatever", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestRedirectAuthenticated(t *testing.T) {
	mw := RedirectAuthenticated(stubAuthWithSession(domainauth.RoleStaff))

	nextRan := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextRan = true
		w.WriteHeader(http.StatusOK)
	}))

	// signed-in users get bounced to the dashboard
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, withSessionCookie(browserRequest(http.MethodGet, "/login")))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.False(t, nextRan)

	// anonymous users see the login page
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, browserRequest(http.MethodGet, "/login"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, nextRan)
}

func TestHasRequiredRole(t *testing.T) {
	tests := []struct {
		user     domainauth.Role
		required domainauth.Role
		want     bool
	}{
		{domainauth.RoleAdmin, domainauth.RoleAdmin, true},
		{domainauth.RoleAdmin, domainauth.RoleStaff, true},
		{domainauth.RoleStaff, domainauth.RoleAdmin, false},
		{domainauth.RoleStaff, domainauth.RoleStaff, true},
		{domainauth.RoleGuest, domainauth.RoleStaff, false},
		{domainauth.Role("bogus"), domainauth.RoleGuest, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hasRequiredRole(tt.user, tt.required), "%s vs %s", tt.user, tt.required)
	}
}

func TestIsBrowserRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.Header.Set("Accept", "text/html,application/xhtml+xml")
	assert.True(t, isBrowserRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	r.Header.Set("Accept", "text/html")
	assert.False(t, isBrowserRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/static/css/styles.css", nil)
	assert.False(t, isBrowserRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/brands", nil)
	r.Header.Set("Hx-Request", "true")
	assert.True(t, isBrowserRequest(r))

	r = httptest.NewRequest(http.MethodGet, "/brands", nil)
	r.Header.Set("Accept", "application/json")
	assert.False(t, isBrowserRequest(r))
}

func TestAcceptsGzip(t *testing.T) {
	assert.True(t, acceptsGzip("gzip"))
	assert.True(t, acceptsGzip("gzip, deflate, br"))
	assert.True(t, acceptsGzip("deflate, gzip;q=0.5"))
	assert.False(t, acceptsGzip(""))
	assert.False(t, acceptsGzip("deflate"))
	assert.False(t, acceptsGzip("gzip;q=0"))
}

func TestCompressionMiddleware(t *testing.T) {
	body := "<html>" + string(make([]byte, 256)) + "</html>"
	handler := Compression(CompressionConfig{Level: gzip.DefaultCompression})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = io.WriteString(w, body)
		}),
	)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	gr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	decoded, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.Equal(t, body, string(decoded))

	// clients that do not accept gzip get the plain body
	r = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, body, w.Body.String())
}
