package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/manytooh/catalog-admin/internal/errors"
	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// AuthLoginService defines the auth operations used by the login handlers.
type AuthLoginService interface {
	Login(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for login, logout, and session status.
type AuthHandlers struct {
	Svc          AuthLoginService
	T            *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the sign-in form.
// GET /login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, loginView{
		RedirectURI: safeRedirectPath(r.URL.Query().Get("redirect_uri")),
	})
}

// Login authenticates the submitted credentials against the catalog backend
// and establishes the dashboard session.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, loginView{Error: "Invalid form submission."})
		return
	}

	view := loginView{
		Username:    strings.TrimSpace(r.Form.Get("username")),
		RedirectURI: safeRedirectPath(r.Form.Get("redirect_uri")),
	}
	password := r.Form.Get("password")

	session, err := h.Svc.Login(r.Context(), ports.Credentials{
		Username: view.Username,
		Password: password,
	})
	if err != nil {
		view.Error = loginErrorMessage(err)
		h.renderLogin(w, r, view)
		return
	}

	h.setSessionCookie(w, r, *session)

	target := view.RedirectURI
	if target == "/" {
		target = "/dashboard"
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout clears the dashboard session and signs out of the backend best effort.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearCookie(w, r, SessionCookieName)

	if IsHTMX(r) {
		HTMX(w).Redirect("/login")
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		h.clearCookie(w, r, SessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":       session.UserID,
			"username": session.Username,
			"role":     session.Role,
		},
		"expires_at": session.ExpiresAt,
	})
}

// loginView carries the login form state across renders.
type loginView struct {
	Username    string
	RedirectURI string
	Error       string
}

// loginErrorMessage maps login failures onto the form. Backend credential
// rejections surface the backend's own message verbatim; everything else gets
// a generic connectivity message.
func loginErrorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case apperrors.IsValidation(err), apperrors.IsUnauthorized(err):
			return appErr.Message
		}
	}
	return "Network Error"
}

func (h *AuthHandlers) renderLogin(w http.ResponseWriter, r *http.Request, view loginView) {
	data := map[string]any{
		"Title":       "Catalog Admin - Sign In",
		"Username":    view.Username,
		"RedirectURI": view.RedirectURI,
	}
	if token := GetCSRFToken(r); token != "" {
		data["CSRFToken"] = token
	}
	if view.Error != "" {
		data["Error"] = true
		data["ErrorMessage"] = view.Error
	}

	if h.T == nil {
		http.Error(w, "login unavailable", http.StatusInternalServerError)
		return
	}
	if err := h.T.renderTemplate(w, "login-page", data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// clearCookie clears a cookie by setting it to expire immediately.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
