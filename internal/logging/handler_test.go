package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

// testDB creates a temporary test database with migrations applied.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "matha-logging-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})

	return db
}

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func lastEvent(t *testing.T, db *sql.DB) model.Event {
	t.Helper()
	events, err := store.New(db).ListEvents(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("no events written")
	}
	return events[0]
}

func TestEventLogHandler_WarnIsPersisted(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	logger.Warn("booking validation failed", "reference", "SVA-TEST")

	e := lastEvent(t, db)
	if e.Level != model.EventLevelWarning {
		t.Errorf("Level = %q, want %q", e.Level, model.EventLevelWarning)
	}
	if e.Category != model.EventCategoryBooking {
		t.Errorf("Category = %q, want %q", e.Category, model.EventCategoryBooking)
	}
	if e.Message != "booking validation failed" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestEventLogHandler_InfoIsNotPersisted(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	logger.Info("server started")

	events, err := store.New(db).ListEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events = %d, want 0 for info-level log", len(events))
	}
}

func TestEventLogHandler_ExplicitCategory(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	logger.Error("remote write skipped", "category", model.EventCategoryAdmin)

	e := lastEvent(t, db)
	if e.Category != model.EventCategoryAdmin {
		t.Errorf("Category = %q, want %q", e.Category, model.EventCategoryAdmin)
	}
	if e.Level != model.EventLevelError {
		t.Errorf("Level = %q, want %q", e.Level, model.EventLevelError)
	}
}

func TestEventLogHandler_CustomLevel(t *testing.T) {
	db := testDB(t)
	h := NewEventLogHandlerWithLevel(discardHandler{}, db, slog.LevelInfo)
	logger := slog.New(h)

	logger.Info("cache preloaded", "category", model.EventCategoryCache)

	e := lastEvent(t, db)
	if e.Category != model.EventCategoryCache {
		t.Errorf("Category = %q, want %q", e.Category, model.EventCategoryCache)
	}
}
