// Package booking handles seva and guest house bookings: validation,
// reference generation, local persistence and the mailto handoff the
// office processes by hand. No payment or email leaves the server.
package booking

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/content"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

// Office contact handed to devotees on every confirmation.
const (
	OfficeEmail = "office@sodematha.in"
	OfficePhone = "+91 820 253 0000"
)

// CancellationPolicy is shown with every seva confirmation.
const CancellationPolicy = "Full refund up to 48 hours before the seva, " +
	"50% between 24 and 48 hours, no refund within 24 hours."

var (
	ErrSevaRequired    = errors.New("booking: seva is required")
	ErrUnknownSeva     = errors.New("booking: unknown seva")
	ErrUnknownRoomType = errors.New("booking: unknown room type")
	ErrDateRequired    = errors.New("booking: date is required")
	ErrNameRequired    = errors.New("booking: name is required")
	ErrMobileInvalid   = errors.New("booking: mobile must have at least 10 digits")
	ErrConsentRequired = errors.New("booking: consent is required")
	ErrStayInvalid     = errors.New("booking: check-out must be after check-in")
	ErrGuestsInvalid   = errors.New("booking: at least one guest is required")
	ErrPaymentMode     = errors.New("booking: unknown payment mode")
	ErrBookingNotFound = errors.New("booking: not found")
)

// SevaRequest is a devotee's seva booking submission.
type SevaRequest struct {
	SevaID      string `json:"seva_id"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	PaymentMode string `json:"payment_mode"`
	Consent     bool   `json:"consent"`
}

// RoomRequest is a guest house booking submission.
type RoomRequest struct {
	RoomTypeID string `json:"room_type_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	Purpose    string `json:"purpose"`
}

// Confirmation is returned to the client after a booking is stored.
type Confirmation struct {
	Booking            model.Booking `json:"booking"`
	Mailto             string        `json:"mailto"`
	CancellationPolicy string        `json:"cancellation_policy,omitempty"`
	OfficeEmail        string        `json:"office_email"`
	OfficePhone        string        `json:"office_phone"`
}

// Service books sevas and rooms against the local store.
type Service struct {
	q   *store.Queries
	now func() time.Time
}

// NewService creates a booking service.
func NewService(q *store.Queries) *Service {
	return &Service{q: q, now: time.Now}
}

// Sevas returns the bookable seva catalog.
func (s *Service) Sevas() []model.Seva {
	return content.Sevas()
}

// RoomTypes returns the guest house room catalog.
func (s *Service) RoomTypes() []model.RoomType {
	return content.RoomTypes()
}

// BookSeva validates and stores a seva booking, returning the confirmation
// with its reference and mailto handoff.
func (s *Service) BookSeva(ctx context.Context, req SevaRequest) (Confirmation, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Mobile = strings.TrimSpace(req.Mobile)

	if req.SevaID == "" {
		return Confirmation{}, ErrSevaRequired
	}
	seva, ok := sevaByID(req.SevaID)
	if !ok {
		return Confirmation{}, ErrUnknownSeva
	}
	if req.Date == "" {
		return Confirmation{}, ErrDateRequired
	}
	if req.Name == "" {
		return Confirmation{}, ErrNameRequired
	}
	if digitCount(req.Mobile) < 10 {
		return Confirmation{}, ErrMobileInvalid
	}
	if !req.Consent {
		return Confirmation{}, ErrConsentRequired
	}
	if req.PaymentMode != "" && !validPaymentMode(req.PaymentMode) {
		return Confirmation{}, ErrPaymentMode
	}

	now := s.now()
	b := model.Booking{
		ID:          uuid.NewString(),
		Reference:   Reference("SVA", now),
		Kind:        model.BookingKindSeva,
		ItemID:      seva.ID,
		Name:        req.Name,
		Mobile:      req.Mobile,
		Email:       req.Email,
		Date:        req.Date,
		PaymentMode: req.PaymentMode,
		Amount:      seva.Amount,
		Day:         now.Format("Mon"),
		CreatedAt:   now,
	}
	if err := s.q.CreateBooking(ctx, b); err != nil {
		return Confirmation{}, fmt.Errorf("storing seva booking: %w", err)
	}

	return Confirmation{
		Booking:            b,
		Mailto:             sevaMailto(b, seva),
		CancellationPolicy: CancellationPolicy,
		OfficeEmail:        OfficeEmail,
		OfficePhone:        OfficePhone,
	}, nil
}

// BookRoom validates and stores a guest house booking.
func (s *Service) BookRoom(ctx context.Context, req RoomRequest) (Confirmation, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Mobile = strings.TrimSpace(req.Mobile)

	room, ok := roomTypeByID(req.RoomTypeID)
	if !ok {
		return Confirmation{}, ErrUnknownRoomType
	}
	if req.CheckIn == "" || req.CheckOut == "" || req.CheckOut <= req.CheckIn {
		return Confirmation{}, ErrStayInvalid
	}
	if req.Guests < 1 {
		return Confirmation{}, ErrGuestsInvalid
	}
	if req.Name == "" {
		return Confirmation{}, ErrNameRequired
	}
	if digitCount(req.Mobile) < 10 {
		return Confirmation{}, ErrMobileInvalid
	}

	now := s.now()
	b := model.Booking{
		ID:        uuid.NewString(),
		Reference: Reference("RM", now),
		Kind:      model.BookingKindRoom,
		ItemID:    room.ID,
		Name:      req.Name,
		Mobile:    req.Mobile,
		Email:     req.Email,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests,
		Purpose:   req.Purpose,
		Amount:    room.Rate,
		CreatedAt: now,
	}
	if err := s.q.CreateBooking(ctx, b); err != nil {
		return Confirmation{}, fmt.Errorf("storing room booking: %w", err)
	}

	return Confirmation{
		Booking:     b,
		Mailto:      roomMailto(b, room),
		OfficeEmail: OfficeEmail,
		OfficePhone: OfficePhone,
	}, nil
}

// Lookup returns the stored booking for a reference.
func (s *Service) Lookup(ctx context.Context, ref string) (model.Booking, error) {
	b, err := s.q.GetBookingByReference(ctx, ref)
	if err != nil {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// Reference builds a booking reference: the prefix plus the millisecond
// timestamp in uppercase base36.
func Reference(prefix string, t time.Time) string {
	return prefix + "-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

func sevaByID(id string) (model.Seva, bool) {
	for _, s := range content.Sevas() {
		if s.ID == id {
			return s, true
		}
	}
	return model.Seva{}, false
}

func roomTypeByID(id string) (model.RoomType, bool) {
	for _, r := range content.RoomTypes() {
		if r.ID == id {
			return r, true
		}
	}
	return model.RoomType{}, false
}

func validPaymentMode(mode string) bool {
	switch mode {
	case model.PaymentModeUPI, model.PaymentModeCard, model.PaymentModeNetbanking:
		return true
	}
	return false
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// sevaMailto composes the office handoff link for a seva booking.
func sevaMailto(b model.Booking, seva model.Seva) string {
	subject := fmt.Sprintf("Seva Booking Request – %s", b.Reference)
	body := strings.Join([]string{
		"Reference: " + b.Reference,
		"Seva: " + seva.Name,
		"Date: " + b.Date,
		"Name: " + b.Name,
		"Mobile: " + b.Mobile,
		"Email: " + orNA(b.Email),
		fmt.Sprintf("Amount: ₹%d", b.Amount),
		"Payment Mode: " + orNA(b.PaymentMode),
	}, "\n")
	return mailto(subject, body)
}

// roomMailto composes the office handoff link for a room booking.
func roomMailto(b model.Booking, room model.RoomType) string {
	subject := fmt.Sprintf("Room Booking Request – %s", b.Reference)
	body := strings.Join([]string{
		"Reference: " + b.Reference,
		"Room Type: " + room.Name,
		"Check-in: " + b.CheckIn,
		"Check-out: " + b.CheckOut,
		fmt.Sprintf("Guests: %d", b.Guests),
		"Name: " + b.Name,
		"Mobile: " + b.Mobile,
		"Email: " + orNA(b.Email),
		"Purpose: " + orNA(b.Purpose),
	}, "\n")
	return mailto(subject, body)
}

func mailto(subject, body string) string {
	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)
	// mailto links encode spaces as %20, not +
	return "mailto:" + OfficeEmail + "?" + strings.ReplaceAll(params.Encode(), "+", "%20")
}
