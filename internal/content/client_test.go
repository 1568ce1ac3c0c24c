package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSelect_SendsAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("apikey"); got != "test-key" {
			t.Errorf("apikey header = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization header = %q", got)
		}
		if r.URL.Path != "/rest/v1/branches" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"sode"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	items, err := Select[row](context.Background(), c, "branches", "select=*")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(items) != 1 || items[0].ID != "sode" {
		t.Errorf("got %+v", items)
	}
}

func TestSelect_ClientErrorIsNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	if _, err := Select[row](context.Background(), c, "missing", "select=*"); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
	if attempts != 1 {
		t.Errorf("server hit %d times, want 1", attempts)
	}
}

func TestSelect_ServerErrorIsRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"ok"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	items, err := Select[row](context.Background(), c, "branches", "select=*")
	if err != nil {
		t.Fatalf("Select after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("server hit %d times, want 3", attempts)
	}
	if len(items) != 1 || items[0].ID != "ok" {
		t.Errorf("got %+v", items)
	}
}

func TestSelect_Unconfigured(t *testing.T) {
	c := NewClient("", "")
	if c.Configured() {
		t.Error("expected Configured() = false")
	}
	if _, err := Select[row](context.Background(), c, "branches", "select=*"); err == nil {
		t.Error("expected an error from an unconfigured client")
	}
}
