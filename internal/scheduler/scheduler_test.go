package scheduler

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/analytics"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/notify"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/service"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestScheduler_StartRegistersJobs(t *testing.T) {
	db := testDB(t)
	queries := store.New(db)

	s := New(
		analytics.NewService(queries),
		notify.NewDispatcher(queries, notify.NoopPublisher{}),
		service.NewEventService(db),
		nil,
	)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop()

	if got := len(s.cron.Entries()); got != 3 {
		t.Errorf("expected 3 jobs, got %d", got)
	}
}

func TestScheduler_NilServicesSkipJobs(t *testing.T) {
	s := New(nil, nil, nil, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop()

	if got := len(s.cron.Entries()); got != 0 {
		t.Errorf("expected no jobs, got %d", got)
	}
}
