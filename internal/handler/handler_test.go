package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/analytics"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/booking"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/content"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/firestore"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/notify"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/service"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/session"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/visibility"
)

// testEnv is a running API server with direct access to its database.
type testEnv struct {
	srv     *httptest.Server
	client  *http.Client
	queries *store.Queries
}

// newTestEnv builds the full API against a temporary database and an
// unconfigured remote backend, so every content kind serves fallbacks and
// the admin plane runs in demo mode.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	queries := store.New(db)
	sm := session.New(db, true)
	catalog := content.NewCatalog(content.NewClient("", ""), nil, 0)
	vis := visibility.New(queries, nil)
	bookings := booking.NewService(queries)
	stats := analytics.NewService(queries)
	events := service.NewEventService(db)
	dispatcher := notify.NewDispatcher(queries, notify.NoopPublisher{})
	admin := service.NewAdminService(firestore.NewClient("", ""), events, dispatcher)

	h := New(sm, db, queries, catalog, vis, bookings, stats, admin, events)
	srv := httptest.NewServer(h.Routes(true))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}
	return &testEnv{srv: srv, client: client, queries: queries}
}

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	env := newTestEnv(t)
	return env.srv, env.client
}

// doJSON sends a request with an optional JSON body and decodes the JSON
// response into a generic map.
func doJSON(t *testing.T, client *http.Client, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func getJSON(t *testing.T, client *http.Client, url string) (int, map[string]any) {
	t.Helper()
	return doJSON(t, client, http.MethodGet, url, nil)
}

func postJSON(t *testing.T, client *http.Client, url string, body any) (int, map[string]any) {
	t.Helper()
	return doJSON(t, client, http.MethodPost, url, body)
}

// adminLogin opens a demo admin session on the test client.
func adminLogin(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()
	status, resp := postJSON(t, client, baseURL+"/api/admin/login", map[string]any{
		"email":    "admin@example.com",
		"password": "secret",
	})
	if status != http.StatusOK {
		t.Fatalf("admin login: status %d, resp %v", status, resp)
	}
}
