package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
	apperrors "github.com/manytooh/catalog-admin/internal/errors"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// Default JMESPath expressions for pulling identity fields out of the
// who-am-I response. The backend reports user_id for regular accounts and
// staff_id for staff accounts; the default expression accepts either.
const (
	DefaultUserIDExpr   = "user_id || staff_id"
	DefaultRoleExpr     = "role"
	DefaultUsernameExpr = "username"
)

// IdentityExprs configures the JMESPath expressions used to extract
// identity fields from the backend's who-am-I JSON.
type IdentityExprs struct {
	UserID   string
	Role     string
	Username string
}

func (e IdentityExprs) withDefaults() IdentityExprs {
	if strings.TrimSpace(e.UserID) == "" {
		e.UserID = DefaultUserIDExpr
	}
	if strings.TrimSpace(e.Role) == "" {
		e.Role = DefaultRoleExpr
	}
	if strings.TrimSpace(e.Username) == "" {
		e.Username = DefaultUsernameExpr
	}
	return e
}

// Authenticator implements ports.CredentialAuthenticator against the
// backend's cookie-session endpoints.
type Authenticator struct {
	client *Client
	exprs  IdentityExprs
}

var _ ports.CredentialAuthenticator = (*Authenticator)(nil)

// NewAuthenticator validates the identity expressions and builds an
// Authenticator.
func NewAuthenticator(client *Client, exprs IdentityExprs) (*Authenticator, error) {
	exprs = exprs.withDefaults()
	for _, expr := range []string{exprs.UserID, exprs.Role, exprs.Username} {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, fmt.Errorf("invalid identity expression %q: %w", expr, err)
		}
	}
	return &Authenticator{client: client, exprs: exprs}, nil
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login posts credentials to the backend, captures its session cookie,
// and resolves the caller's identity via the who-am-I endpoint. A 400
// from the backend carries a message meant for the login form verbatim.
func (a *Authenticator) Login(ctx context.Context, creds ports.Credentials) (ports.LoginResult, error) {
	payload, err := json.Marshal(loginPayload{Username: creds.Username, Password: creds.Password})
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("marshal login payload: %w", err)
	}

	req, err := a.client.newRequest(ctx, http.MethodPost, "/users/login", strings.NewReader(string(payload)))
	if err != nil {
		return ports.LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.do(req)
	if err != nil {
		return ports.LoginResult{}, err
	}
	cookie := joinCookies(resp)
	if err := drain(resp); err != nil {
		return ports.LoginResult{}, fmt.Errorf("drain login response: %w", err)
	}
	if cookie == "" {
		return ports.LoginResult{}, apperrors.Upstream("backend login returned no session cookie")
	}

	identity, err := a.Validate(ctx, cookie)
	if err != nil {
		return ports.LoginResult{}, err
	}
	return ports.LoginResult{Identity: identity, BackendCookie: cookie}, nil
}

// Validate calls the who-am-I endpoint with the given backend cookie and
// extracts the current identity.
func (a *Authenticator) Validate(ctx context.Context, backendCookie string) (domainauth.Identity, error) {
	resp, err := a.whoAmI(ctx, backendCookie)
	if err != nil {
		return domainauth.Identity{}, err
	}
	defer resp.Body.Close()

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "decode who-am-I response")
	}
	return a.extractIdentity(doc)
}

// Logout tears down the backend session. Best effort: callers typically
// ignore the returned error.
func (a *Authenticator) Logout(ctx context.Context, backendCookie string) error {
	req, err := a.client.newRequest(ctx, http.MethodPost, "/users/logout", nil)
	if err != nil {
		return err
	}
	if backendCookie != "" {
		req.Header.Set("Cookie", backendCookie)
	}
	resp, err := a.client.do(req)
	if err != nil {
		return err
	}
	return drain(resp)
}

func (a *Authenticator) whoAmI(ctx context.Context, backendCookie string) (*http.Response, error) {
	req, err := a.client.newRequest(ctx, http.MethodGet, "/users/authenticate", nil)
	if err != nil {
		return nil, err
	}
	if backendCookie != "" {
		req.Header.Set("Cookie", backendCookie)
	}
	return a.client.do(req)
}

// extractIdentity applies the configured expressions to the who-am-I
// document. All three fields must resolve to non-empty values.
func (a *Authenticator) extractIdentity(doc any) (domainauth.Identity, error) {
	userID, err := a.searchString(a.exprs.UserID, doc)
	if err != nil {
		return domainauth.Identity{}, err
	}
	role, err := a.searchString(a.exprs.Role, doc)
	if err != nil {
		return domainauth.Identity{}, err
	}
	username, err := a.searchString(a.exprs.Username, doc)
	if err != nil {
		return domainauth.Identity{}, err
	}
	if userID == "" || role == "" || username == "" {
		return domainauth.Identity{}, apperrors.Upstream("who-am-I response is missing identity fields")
	}
	return domainauth.Identity{
		UserID:   userID,
		Role:     domainauth.Role(strings.ToLower(role)),
		Username: username,
	}, nil
}

func (a *Authenticator) searchString(expr string, doc any) (string, error) {
	val, err := jmespath.Search(expr, doc)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "evaluate identity expression %q", expr)
	}
	return stringify(val), nil
}

// stringify renders scalar JMESPath results as strings; backends are
// inconsistent about numeric vs string IDs.
func stringify(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// joinCookies flattens the response Set-Cookie headers into a single
// Cookie header value for replay on later requests.
func joinCookies(resp *http.Response) string {
	cookies := resp.Cookies()
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}
