package booking

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

func testService(t *testing.T) *Service {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return NewService(store.New(db))
}

func validSevaRequest() SevaRequest {
	return SevaRequest{
		SevaID:      "abhisheka",
		Date:        "2026-03-08",
		Name:        "Rohan Bhat",
		Mobile:      "9876543210",
		PaymentMode: "upi",
		Consent:     true,
	}
}

func TestBookSeva(t *testing.T) {
	s := testService(t)

	conf, err := s.BookSeva(context.Background(), validSevaRequest())
	if err != nil {
		t.Fatalf("BookSeva: %v", err)
	}

	if matched := regexp.MustCompile(`^SVA-[0-9A-Z]+$`).MatchString(conf.Booking.Reference); !matched {
		t.Errorf("reference %q does not match the expected pattern", conf.Booking.Reference)
	}
	if conf.Booking.Amount != 501 {
		t.Errorf("amount = %d, want 501", conf.Booking.Amount)
	}
	if conf.Booking.Day == "" {
		t.Error("expected a weekday bucket for analytics")
	}
	if conf.CancellationPolicy == "" {
		t.Error("expected the cancellation policy on the confirmation")
	}
	if !strings.HasPrefix(conf.Mailto, "mailto:"+OfficeEmail+"?") {
		t.Errorf("mailto = %q", conf.Mailto)
	}
	if !strings.Contains(conf.Mailto, "Email%3A%20N%2FA") {
		t.Errorf("expected N/A for the missing email, got %q", conf.Mailto)
	}

	got, err := s.Lookup(context.Background(), conf.Booking.Reference)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.Name != "Rohan Bhat" {
		t.Errorf("stored name = %q", got.Name)
	}
}

func TestBookSeva_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SevaRequest)
		wantErr error
	}{
		{"missing seva", func(r *SevaRequest) { r.SevaID = "" }, ErrSevaRequired},
		{"unknown seva", func(r *SevaRequest) { r.SevaID = "helicopter" }, ErrUnknownSeva},
		{"missing date", func(r *SevaRequest) { r.Date = "" }, ErrDateRequired},
		{"missing name", func(r *SevaRequest) { r.Name = "  " }, ErrNameRequired},
		{"short mobile", func(r *SevaRequest) { r.Mobile = "12345" }, ErrMobileInvalid},
		{"no consent", func(r *SevaRequest) { r.Consent = false }, ErrConsentRequired},
		{"bad payment mode", func(r *SevaRequest) { r.PaymentMode = "cheque" }, ErrPaymentMode},
	}

	s := testService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSevaRequest()
			tt.mutate(&req)
			if _, err := s.BookSeva(context.Background(), req); !errors.Is(err, tt.wantErr) {
				t.Errorf("BookSeva() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBookRoom(t *testing.T) {
	s := testService(t)

	conf, err := s.BookRoom(context.Background(), RoomRequest{
		RoomTypeID: "family",
		CheckIn:    "2026-04-10",
		CheckOut:   "2026-04-12",
		Guests:     5,
		Name:       "Ananya Rao",
		Mobile:     "9876501234",
		Email:      "ananya@example.com",
		Purpose:    "Aradhana darshana",
	})
	if err != nil {
		t.Fatalf("BookRoom: %v", err)
	}

	if matched := regexp.MustCompile(`^RM-[0-9A-Z]+$`).MatchString(conf.Booking.Reference); !matched {
		t.Errorf("reference %q does not match the expected pattern", conf.Booking.Reference)
	}
	if conf.Booking.Amount != 1200 {
		t.Errorf("amount = %d, want 1200", conf.Booking.Amount)
	}
	if !strings.Contains(conf.Mailto, "Room%20Booking%20Request") {
		t.Errorf("mailto subject missing, got %q", conf.Mailto)
	}
}

func TestBookRoom_StayValidation(t *testing.T) {
	s := testService(t)
	req := RoomRequest{
		RoomTypeID: "single",
		CheckIn:    "2026-04-12",
		CheckOut:   "2026-04-12",
		Guests:     1,
		Name:       "Rohan",
		Mobile:     "9876543210",
	}
	if _, err := s.BookRoom(context.Background(), req); !errors.Is(err, ErrStayInvalid) {
		t.Errorf("BookRoom() = %v, want ErrStayInvalid", err)
	}

	req.CheckOut = "2026-04-11"
	if _, err := s.BookRoom(context.Background(), req); !errors.Is(err, ErrStayInvalid) {
		t.Errorf("BookRoom() with earlier check-out = %v, want ErrStayInvalid", err)
	}
}

func TestLookup_NotFound(t *testing.T) {
	s := testService(t)
	if _, err := s.Lookup(context.Background(), "SVA-NOPE"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Lookup() = %v, want ErrBookingNotFound", err)
	}
}

func TestReference_Base36Millis(t *testing.T) {
	ts := time.UnixMilli(36) // "10" in base36
	if got := Reference("SVA", ts); got != "SVA-10" {
		t.Errorf("Reference = %q, want SVA-10", got)
	}
}
