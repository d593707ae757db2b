package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"bookreview/internal/app"
	"bookreview/pkg/domain"
	"bookreview/pkg/storage"
	"bookreview/pkg/store"
)

type testEnv struct {
	srv   *httptest.Server
	app   *app.App
	store *store.GormStore
}

type envOption func(*Config)

func withRateLimits(register, login int) envOption {
	return func(cfg *Config) {
		cfg.RegisterRateLimitPerMinute = register
		cfg.LoginRateLimitPerMinute = login
	}
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	dir := t.TempDir()
	dataStore, err := store.NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = dataStore.Close() })
	avatars, err := storage.NewFileStore(filepath.Join(dir, "uploads"), "/uploads/profiles")
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	appCore, err := app.New(app.Config{
		TokenSecret: "test-secret",
		Store:       dataStore,
		Avatars:     avatars,
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	redis := miniredis.RunT(t)
	cfg := Config{
		App:                        appCore,
		RedisAddr:                  redis.Addr(),
		RegisterRateLimitPerMinute: 100,
		LoginRateLimitPerMinute:    100,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, app: appCore, store: dataStore}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

// registerAndLogin creates a user account and returns its token.
func (e *testEnv) registerAndLogin(t *testing.T, username, email string) (domain.User, string) {
	t.Helper()
	resp, _ := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    email,
		"password": "password123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, resp.StatusCode)
	}
	resp, body := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, resp.StatusCode)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login response missing token")
	}
	rawUser, _ := json.Marshal(body["user"])
	var user domain.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		t.Fatalf("decode login user: %v", err)
	}
	return user, token
}

// adminToken promotes a fresh account to admin and logs in again so the
// token carries the admin role.
func (e *testEnv) adminToken(t *testing.T) (domain.User, string) {
	t.Helper()
	user, _ := e.registerAndLogin(t, "admin", "admin@example.com")
	found, err := e.store.SetUserRole(user.ID, domain.RoleAdmin)
	if err != nil || !found {
		t.Fatalf("promote admin: found=%v err=%v", found, err)
	}
	resp, body := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "admin@example.com",
		"password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin login: expected 200, got %d", resp.StatusCode)
	}
	token, _ := body["token"].(string)
	user.Role = domain.RoleAdmin
	return user, token
}

// createBook inserts a catalog entry through the admin API.
func (e *testEnv) createBook(t *testing.T, adminTok, title, author string, genres ...string) string {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/api/admin/books", adminTok, map[string]any{
		"title":  title,
		"author": author,
		"genres": genres,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create book: expected 201, got %d (%v)", resp.StatusCode, body)
	}
	book, _ := body["book"].(map[string]any)
	id, _ := book["id"].(string)
	if id == "" {
		t.Fatal("create book response missing id")
	}
	return id
}

func TestHealthz(t *testing.T) {
	e := newTestEnv(t)
	resp, body := e.do(t, http.MethodGet, "/healthz", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body %v", body)
	}
}

func TestSecurityHeadersPresent(t *testing.T) {
	e := newTestEnv(t)
	resp, _ := e.do(t, http.MethodGet, "/healthz", "", nil)
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("expected nosniff header")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	e := newTestEnv(t)
	resp, body := e.do(t, http.MethodDelete, "/api/auth/register", "", nil)
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
	if body["error"] == "" {
		t.Fatal("expected error message")
	}
}
