package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/manytooh/catalog-admin/internal/errors"
	"github.com/manytooh/catalog-admin/internal/domain/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{BaseURL: srv.URL + "/api/v1"})
	require.NoError(t, err)
	return client, srv
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: ""})
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: "https://example.com/api/v1/"})
	assert.NoError(t, err)
}

func TestClientReplaysSessionCookieFromContext(t *testing.T) {
	var gotCookie string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	ctx := ContextWithSessionCookie(context.Background(), "connect.sid=abc123")
	var out []model.Brand
	require.NoError(t, client.getJSON(ctx, "/brands", &out))
	assert.Equal(t, "connect.sid=abc123", gotCookie)
}

func TestClientPrefixesBasePath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))

	var out []model.Brand
	require.NoError(t, client.getJSON(context.Background(), "/brands", &out))
	assert.Equal(t, "/api/v1/brands", gotPath)
}

func TestClientMapsErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"bad request", http.StatusBadRequest, `{"message":"bad input"}`, apperrors.IsValidation},
		{"unauthorized", http.StatusUnauthorized, `{}`, apperrors.IsUnauthorized},
		{"not found", http.StatusNotFound, `{}`, apperrors.IsNotFound},
		{"conflict", http.StatusConflict, `{}`, apperrors.IsConflict},
		{"server error", http.StatusInternalServerError, ``, apperrors.IsUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			var out []model.Brand
			err := client.getJSON(context.Background(), "/brands", &out)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected mapping: %v", err)
		})
	}
}

func TestClientSurfacesBackendMessageVerbatim(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":{"incorrect":"Incorrect username or password!"}}`))
	}))

	var out []model.Brand
	err := client.getJSON(context.Background(), "/brands", &out)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Incorrect username or password!", appErr.Message)
}

func TestClientMapsTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	var out []model.Brand
	err = client.getJSON(context.Background(), "/brands", &out)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestDecodeErrorMessage(t *testing.T) {
	assert.Equal(t, "nope", decodeErrorMessage([]byte(`{"errors":{"incorrect":"nope"}}`)))
	assert.Equal(t, "flat", decodeErrorMessage([]byte(`{"message":"flat"}`)))
	assert.Equal(t, "alt", decodeErrorMessage([]byte(`{"error":"alt"}`)))
	assert.Equal(t, "", decodeErrorMessage([]byte(`not json`)))
	assert.Equal(t, "", decodeErrorMessage(nil))
}
