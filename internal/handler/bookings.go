package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/booking"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/visibility"
)

// Sevas handles GET /api/sevas. Gated by the seva services flag.
func (h *Handler) Sevas(w http.ResponseWriter, r *http.Request) {
	if !h.vis.Get(r.Context()).Visible(visibility.ServicesSeva) {
		writeJSONSuccess(w, map[string]any{"visible": false})
		return
	}
	writeJSONSuccess(w, map[string]any{
		"visible": true,
		"sevas":   h.bookings.Sevas(),
	})
}

// RoomTypes handles GET /api/rooms. Gated by the room services flag.
func (h *Handler) RoomTypes(w http.ResponseWriter, r *http.Request) {
	if !h.vis.Get(r.Context()).Visible(visibility.ServicesRoom) {
		writeJSONSuccess(w, map[string]any{"visible": false})
		return
	}
	writeJSONSuccess(w, map[string]any{
		"visible": true,
		"rooms":   h.bookings.RoomTypes(),
	})
}

// BookSeva handles POST /api/bookings/seva.
func (h *Handler) BookSeva(w http.ResponseWriter, r *http.Request) {
	var req booking.SevaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	conf, err := h.bookings.BookSeva(r.Context(), req)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	h.logBooking(r, "Seva booking created", conf.Booking)
	writeJSONSuccess(w, map[string]any{"confirmation": conf})
}

// BookRoom handles POST /api/bookings/room.
func (h *Handler) BookRoom(w http.ResponseWriter, r *http.Request) {
	var req booking.RoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	conf, err := h.bookings.BookRoom(r.Context(), req)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	h.logBooking(r, "Room booking created", conf.Booking)
	writeJSONSuccess(w, map[string]any{"confirmation": conf})
}

// BookingByReference handles GET /api/bookings/{ref}.
func (h *Handler) BookingByReference(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookings.Lookup(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Booking not found")
		return
	}
	writeJSONSuccess(w, map[string]any{"booking": b})
}

func (h *Handler) logBooking(r *http.Request, message string, b model.Booking) {
	if h.events == nil {
		return
	}
	err := h.events.LogBookingEvent(r.Context(), model.EventLevelInfo, message, clientIP(r), map[string]any{
		"reference": b.Reference,
		"kind":      b.Kind,
		"item_id":   b.ItemID,
		"amount":    b.Amount,
	})
	if err != nil {
		slog.Error("failed to record booking event", "error", err)
	}
}

// writeBookingError maps service errors to HTTP statuses. Validation
// failures are 400s; unknown catalog ids are 404s.
func writeBookingError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, booking.ErrUnknownSeva), errors.Is(err, booking.ErrUnknownRoomType):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrBookingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrSevaRequired),
		errors.Is(err, booking.ErrDateRequired),
		errors.Is(err, booking.ErrNameRequired),
		errors.Is(err, booking.ErrMobileInvalid),
		errors.Is(err, booking.ErrConsentRequired),
		errors.Is(err, booking.ErrStayInvalid),
		errors.Is(err, booking.ErrGuestsInvalid),
		errors.Is(err, booking.ErrPaymentMode):
		status = http.StatusBadRequest
	default:
		slog.Error("booking failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Booking failed")
		return
	}
	writeJSONError(w, status, err.Error())
}
