package analytics

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

func testService(t *testing.T) (*Service, *store.Queries) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	q := store.New(db)
	return NewService(q), q
}

func insertSevaBooking(t *testing.T, q *store.Queries, day string, amount int64) {
	t.Helper()
	err := q.CreateBooking(context.Background(), model.Booking{
		ID:        uuid.NewString(),
		Reference: "SVA-" + uuid.NewString()[:8],
		Kind:      model.BookingKindSeva,
		ItemID:    "abhisheka",
		Name:      "Test Devotee",
		Mobile:    "9876543210",
		Amount:    amount,
		Day:       day,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("inserting booking: %v", err)
	}
}

func TestRows_StaticTiers(t *testing.T) {
	s, _ := testService(t)

	weekly, err := s.Rows(TierWeekly)
	if err != nil {
		t.Fatalf("Rows(weekly): %v", err)
	}
	if len(weekly) != 4 || weekly[0].Label != "W1" || weekly[3].Amount != 201000 {
		t.Errorf("weekly rows = %+v", weekly)
	}

	monthly, err := s.Rows(TierMonthly)
	if err != nil {
		t.Fatalf("Rows(monthly): %v", err)
	}
	if len(monthly) != 4 || monthly[0].Bookings != 244 || monthly[3].Label != "Apr" {
		t.Errorf("monthly rows = %+v", monthly)
	}
}

func TestRows_UnknownTier(t *testing.T) {
	s, _ := testService(t)
	if _, err := s.Rows("hourly"); err == nil {
		t.Error("expected an error for an unknown tier")
	}
}

func TestRefreshDaily_MergesLiveBookings(t *testing.T) {
	s, q := testService(t)
	ctx := context.Background()

	insertSevaBooking(t, q, "Mon", 501)
	insertSevaBooking(t, q, "Mon", 1001)
	insertSevaBooking(t, q, "Fri", 2501)

	if err := s.RefreshDaily(ctx); err != nil {
		t.Fatalf("RefreshDaily: %v", err)
	}

	rows, err := s.Rows(TierDaily)
	if err != nil {
		t.Fatalf("Rows(daily): %v", err)
	}
	byLabel := make(map[string]model.AnalyticsRow, len(rows))
	for _, r := range rows {
		byLabel[r.Label] = r
	}

	// Baseline Mon 12/24000 plus two live bookings.
	if got := byLabel["Mon"]; got.Bookings != 14 || got.Amount != 25502 {
		t.Errorf("Mon = %+v, want 14 bookings and 25502", got)
	}
	if got := byLabel["Fri"]; got.Bookings != 21 || got.Amount != 43501 {
		t.Errorf("Fri = %+v, want 21 bookings and 43501", got)
	}
	// Untouched day keeps its baseline.
	if got := byLabel["Sun"]; got.Bookings != 18 || got.Amount != 36000 {
		t.Errorf("Sun = %+v, want the baseline", got)
	}
}

func TestRefreshDaily_IsIdempotent(t *testing.T) {
	s, q := testService(t)
	ctx := context.Background()

	insertSevaBooking(t, q, "Wed", 351)

	if err := s.RefreshDaily(ctx); err != nil {
		t.Fatalf("RefreshDaily: %v", err)
	}
	if err := s.RefreshDaily(ctx); err != nil {
		t.Fatalf("RefreshDaily again: %v", err)
	}

	rows, _ := s.Rows(TierDaily)
	for _, r := range rows {
		if r.Label == "Wed" && (r.Bookings != 9 || r.Amount != 14351) {
			t.Errorf("Wed = %+v, refresh must rebuild from the baseline", r)
		}
	}
}
