package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/cache"
)

type row struct {
	ID string `json:"id"`
}

func TestLoader_StaticKindServesFallback(t *testing.T) {
	l := NewLoader("static", nil, []row{{ID: "a"}, {ID: "b"}})

	res := l.Load(context.Background())

	if res.FromRemote {
		t.Error("expected FromRemote = false for a static kind")
	}
	if len(res.Items) != 2 {
		t.Errorf("got %d items, want 2", len(res.Items))
	}
}

func TestLoader_RemoteRowsWin(t *testing.T) {
	fetch := func(ctx context.Context) ([]row, error) {
		return []row{{ID: "remote"}}, nil
	}
	l := NewLoader("kind", fetch, []row{{ID: "fallback"}})

	res := l.Load(context.Background())

	if !res.FromRemote {
		t.Error("expected FromRemote = true")
	}
	if len(res.Items) != 1 || res.Items[0].ID != "remote" {
		t.Errorf("got %+v, want the remote row", res.Items)
	}
}

func TestLoader_FetchErrorServesFallback(t *testing.T) {
	fetch := func(ctx context.Context) ([]row, error) {
		return nil, errors.New("backend down")
	}
	l := NewLoader("kind", fetch, []row{{ID: "fallback"}})

	res := l.Load(context.Background())

	if res.FromRemote {
		t.Error("expected FromRemote = false after a fetch error")
	}
	if len(res.Items) != 1 || res.Items[0].ID != "fallback" {
		t.Errorf("got %+v, want the fallback row", res.Items)
	}
}

func TestLoader_EmptyRemoteServesFallback(t *testing.T) {
	fetch := func(ctx context.Context) ([]row, error) {
		return []row{}, nil
	}
	l := NewLoader("kind", fetch, []row{{ID: "fallback"}})

	res := l.Load(context.Background())

	if res.FromRemote {
		t.Error("expected FromRemote = false for an empty remote table")
	}
	if len(res.Items) != 1 || res.Items[0].ID != "fallback" {
		t.Errorf("got %+v, want the fallback row", res.Items)
	}
}

func TestLoader_CachesSuccessfulLoads(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) ([]row, error) {
		calls++
		return []row{{ID: "remote"}}, nil
	}
	c := cache.NewSimpleMemoryCache(time.Minute)
	defer func() { _ = c.Close() }()

	l := NewLoader("kind", fetch, nil).WithCache(c, time.Minute)

	ctx := context.Background()
	l.Load(ctx)
	res := l.Load(ctx)

	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
	if !res.FromRemote || len(res.Items) != 1 {
		t.Errorf("cached load returned %+v", res)
	}

	l.Invalidate(ctx)
	l.Load(ctx)
	if calls != 2 {
		t.Errorf("fetch called %d times after invalidate, want 2", calls)
	}
}

func TestFallbackDatasets_NotEmpty(t *testing.T) {
	if len(FallbackBranches()) == 0 {
		t.Error("branches fallback is empty")
	}
	if len(FallbackEvents()) == 0 {
		t.Error("events fallback is empty")
	}
	if len(Sevas()) != 6 {
		t.Errorf("got %d sevas, want 6", len(Sevas()))
	}
	if len(RoomTypes()) != 4 {
		t.Errorf("got %d room types, want 4", len(RoomTypes()))
	}

	gurus := GuruParampara()
	if len(gurus) == 0 || gurus[0].ID != "sri-vadiraja-theertha" {
		t.Error("lineage must start with the founder")
	}
	last := gurus[len(gurus)-1]
	if !last.IsBhootaraja {
		t.Error("lineage must end with the guardian entry")
	}
}

func TestPanchangaFor_WeekdayTemplates(t *testing.T) {
	// 2026-03-08 is a Sunday
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	day := PanchangaFor(sunday)
	if day.Vaara != "Sunday" {
		t.Errorf("Vaara = %q, want Sunday", day.Vaara)
	}

	thursday := sunday.AddDate(0, 0, 4)
	if got := PanchangaFor(thursday).Vaara; got != "Thursday" {
		t.Errorf("Vaara = %q, want Thursday", got)
	}
}

func TestSearchBranches(t *testing.T) {
	branches := FallbackBranches()

	got := SearchBranches(branches, "udupi", "")
	if len(got) != 1 || got[0].ID != "udupi" {
		t.Errorf("search udupi returned %+v", got)
	}

	got = SearchBranches(branches, "", "Maharashtra")
	if len(got) != 1 || got[0].ID != "mumbai" {
		t.Errorf("state filter returned %+v", got)
	}

	got = SearchBranches(branches, "nowhere", "")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}
