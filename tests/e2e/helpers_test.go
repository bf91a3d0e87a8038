//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tweeter-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tweeter-backend/internal/app"
	"github.com/heartmarshall/tweeter-backend/internal/config"
)

// testServer wraps the full-stack HTTP server backed by a real PostgreSQL
// container (shared via testhelper).
type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverPostgres},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			PasswordHashCost: 4,
		},
		CORS:    config.CORSConfig{AllowedOrigins: "*"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	st := app.PostgresStorage(pool)
	handler := app.NewHandler(cfg, st, app.NewServices(cfg, st, logger), logger, prometheus.NewRegistry())

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// do sends a JSON request and decodes the JSON response into a generic map
// or slice. It returns the status code and the decoded body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, ts.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (ts *testServer) object(t *testing.T, method, path, token string, body any, wantStatus int) map[string]any {
	t.Helper()
	status, out := ts.do(t, method, path, token, body)
	require.Equal(t, wantStatus, status, "%s %s: %v", method, path, out)
	m, ok := out.(map[string]any)
	require.True(t, ok, "expected JSON object, got %T", out)
	return m
}

func (ts *testServer) list(t *testing.T, path, token string) []any {
	t.Helper()
	status, out := ts.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, status, "GET %s: %v", path, out)
	l, ok := out.([]any)
	require.True(t, ok, "expected JSON array, got %T", out)
	return l
}

type account struct {
	Token string
	ID    string
	Email string
}

// signup registers a user with a unique email.
func (ts *testServer) signup(t *testing.T, name string) account {
	t.Helper()

	email := name + "-" + uuid.NewString()[:8] + "@example.com"
	resp := ts.object(t, http.MethodPost, "/auth/signup", "", map[string]any{
		"email":    email,
		"password": "password123",
		"fullName": name,
	}, http.StatusCreated)

	user := resp["user"].(map[string]any)
	return account{Token: resp["token"].(string), ID: user["id"].(string), Email: email}
}

func (ts *testServer) tweet(t *testing.T, a account, content string) map[string]any {
	t.Helper()
	return ts.object(t, http.MethodPost, "/api/tweets/create", a.Token,
		map[string]any{"content": content}, http.StatusCreated)
}

func ids(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.(map[string]any)["id"].(string))
	}
	return out
}
