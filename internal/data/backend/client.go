// Package backend implements the HTTP client and repositories for the
// catalog backend REST API. All entity data lives behind that API; the
// dashboard holds nothing beyond the request at hand.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/manytooh/catalog-admin/internal/errors"
)

const (
	defaultTimeout  = 15 * time.Second
	maxErrorBodyLen = 64 << 10
)

// Client is the shared HTTP client for all backend repositories. It owns
// the base URL and replays the caller's backend session cookie, carried
// on the request context, onto every outbound request.
type Client struct {
	baseURL *url.URL
	httpc   *http.Client
	logger  *slog.Logger
}

// Options configures a Client.
type Options struct {
	// BaseURL is the backend API root, e.g. "https://backend.example.com/api/v1".
	BaseURL string
	// Timeout bounds each backend call; zero means the default.
	Timeout time.Duration
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient validates the base URL and builds a Client.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("backend base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base URL must be http(s), got %q", opts.BaseURL)
	}

	httpc := opts.HTTPClient
	if httpc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{baseURL: base, httpc: httpc, logger: logger}, nil
}

// cookieKey carries the backend session cookie through request contexts.
type cookieKey struct{}

// ContextWithSessionCookie returns a context carrying the backend session
// cookie for outbound calls made on the session's behalf.
func ContextWithSessionCookie(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, cookieKey{}, cookie)
}

// SessionCookieFromContext returns the backend session cookie from the
// context, or empty when none is set.
func SessionCookieFromContext(ctx context.Context) string {
	cookie, _ := ctx.Value(cookieKey{}).(string)
	return cookie
}

// newRequest builds a request against the backend, attaching the session
// cookie from the context when present.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if cookie := SessionCookieFromContext(ctx); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return req, nil
}

// do executes the request and maps non-2xx statuses and transport
// failures to AppErrors. The caller owns the returned body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperrors.MapTransportError(err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	msg := decodeErrorMessage(body)
	c.logger.Warn("backend request failed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode)
	return nil, apperrors.MapBackendStatus(resp.StatusCode, msg)
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode backend %s response", path)
	}
	return nil
}

// sendJSON issues a request with a JSON body, discarding any response body.
func (c *Client) sendJSON(ctx context.Context, method, path string, in any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal backend %s payload: %w", path, err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return drain(resp)
}

// send issues a request with a prebuilt body, discarding any response body.
func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return drain(resp)
}

// drain discards and closes a response body so the connection can be reused.
func drain(resp *http.Response) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyLen))
	return resp.Body.Close()
}

// backendErrorBody covers the error shapes the backend emits. Login
// failures arrive as {"errors": {"incorrect": "..."}}; other endpoints
// use a flat message.
type backendErrorBody struct {
	Errors struct {
		Incorrect string `json:"incorrect"`
	} `json:"errors"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// decodeErrorMessage extracts a human-readable message from an error
// response body. Returns empty when nothing usable is present.
func decodeErrorMessage(body []byte) string {
	var parsed backendErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	switch {
	case parsed.Errors.Incorrect != "":
		return parsed.Errors.Incorrect
	case parsed.Message != "":
		return parsed.Message
	case parsed.Error != "":
		return parsed.Error
	default:
		return ""
	}
}
