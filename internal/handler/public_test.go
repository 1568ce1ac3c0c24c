package handler

import (
	"net/http"
	"testing"
)

func TestHome_AllSectionsVisibleByDefault(t *testing.T) {
	srv, client := newTestServer(t)

	status, resp := getJSON(t, client, srv.URL+"/api/home")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	for _, key := range []string{"news", "announcements", "timings"} {
		sec, ok := resp[key].(map[string]any)
		if !ok {
			t.Fatalf("missing section %q in %v", key, resp)
		}
		if sec["visible"] != true {
			t.Errorf("section %q: expected visible=true, got %v", key, sec["visible"])
		}
		items, ok := sec["items"].([]any)
		if !ok || len(items) == 0 {
			t.Errorf("section %q: expected items, got %v", key, sec["items"])
		}
	}
}

func TestHome_HiddenSectionReturnsNoItems(t *testing.T) {
	srv, client := newTestServer(t)
	adminLogin(t, client, srv.URL)

	status, _ := doJSON(t, client, http.MethodPut, srv.URL+"/api/admin/visibility", map[string]any{
		"sections": map[string]bool{"home.news": false},
	})
	if status != http.StatusOK {
		t.Fatalf("set visibility: status %d", status)
	}

	_, resp := getJSON(t, client, srv.URL+"/api/home")
	news := resp["news"].(map[string]any)
	if news["visible"] != false {
		t.Errorf("expected news hidden, got %v", news)
	}
	if _, present := news["items"]; present {
		t.Error("hidden section must not carry items")
	}
	ann := resp["announcements"].(map[string]any)
	if ann["visible"] != true {
		t.Error("untouched sections must stay visible")
	}
}

func TestBranches_FallbackAndSearch(t *testing.T) {
	srv, client := newTestServer(t)

	status, resp := getJSON(t, client, srv.URL+"/api/branches")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if resp["from_remote"] != false {
		t.Error("unconfigured backend must serve fallbacks")
	}
	all := resp["branches"].([]any)
	if len(all) != 4 {
		t.Fatalf("expected 4 fallback branches, got %d", len(all))
	}

	_, resp = getJSON(t, client, srv.URL+"/api/branches?q=udupi")
	matched := resp["branches"].([]any)
	if len(matched) != 1 {
		t.Fatalf("expected 1 match for udupi, got %d", len(matched))
	}

	_, resp = getJSON(t, client, srv.URL+"/api/branches?state=Maharashtra")
	matched = resp["branches"].([]any)
	if len(matched) != 1 {
		t.Fatalf("expected 1 Maharashtra branch, got %d", len(matched))
	}
}

func TestPanchanga_DateAndValidation(t *testing.T) {
	srv, client := newTestServer(t)

	// 2026-03-08 is a Sunday.
	status, resp := getJSON(t, client, srv.URL+"/api/panchanga?date=2026-03-08")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	day := resp["panchanga"].(map[string]any)
	if day["tithi"] != "Shukla Dwitiya" {
		t.Errorf("expected Sunday tithi Shukla Dwitiya, got %v", day["tithi"])
	}

	status, _ = getJSON(t, client, srv.URL+"/api/panchanga?date=8-March-2026")
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", status)
	}
}

func TestGurus_LineageAndDetail(t *testing.T) {
	srv, client := newTestServer(t)

	_, resp := getJSON(t, client, srv.URL+"/api/gurus")
	gurus := resp["gurus"].([]any)
	if len(gurus) != 7 {
		t.Fatalf("expected 7 lineage entries, got %d", len(gurus))
	}
	first := gurus[0].(map[string]any)
	if first["id"] != "sri-vadiraja-theertha" {
		t.Errorf("expected founder first, got %v", first["id"])
	}
	if first["biography_html"] == "" {
		t.Error("expected rendered biography")
	}

	status, _ := getJSON(t, client, srv.URL+"/api/gurus/no-such-guru")
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown guru, got %d", status)
	}
}

func TestNotifications_CarryRelativeTime(t *testing.T) {
	srv, client := newTestServer(t)

	_, resp := getJSON(t, client, srv.URL+"/api/notifications")
	items := resp["notifications"].([]any)
	if len(items) == 0 {
		t.Fatal("expected fallback notifications")
	}
	first := items[0].(map[string]any)
	if _, ok := first["time_ago"]; !ok {
		t.Error("expected time_ago on notification")
	}
}

func TestPublications_Filters(t *testing.T) {
	srv, client := newTestServer(t)

	_, resp := getJSON(t, client, srv.URL+"/api/publications")
	all := resp["publications"].([]any)
	if len(all) != 5 {
		t.Fatalf("expected 5 fallback publications, got %d", len(all))
	}

	_, resp = getJSON(t, client, srv.URL+"/api/publications?language=Kannada")
	filtered := resp["publications"].([]any)
	if len(filtered) == 0 || len(filtered) == len(all) {
		t.Errorf("language filter had no effect: %d of %d", len(filtered), len(all))
	}
}

func TestVisibilityEndpoint_ListsAllSections(t *testing.T) {
	srv, client := newTestServer(t)

	_, resp := getJSON(t, client, srv.URL+"/api/visibility")
	sections := resp["sections"].(map[string]any)
	if len(sections) != 7 {
		t.Fatalf("expected 7 section flags, got %d", len(sections))
	}
	for key, v := range sections {
		if v != true {
			t.Errorf("section %q: expected default true", key)
		}
	}
}
