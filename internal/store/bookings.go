package store

import (
	"context"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
)

// CreateBooking inserts a seva or room booking record.
func (q *Queries) CreateBooking(ctx context.Context, b model.Booking) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO bookings (id, reference, kind, item_id, name, mobile, email, date,
		 check_in, check_out, guests, purpose, payment_mode, amount, day, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Reference, b.Kind, b.ItemID, b.Name, b.Mobile, b.Email, b.Date,
		b.CheckIn, b.CheckOut, b.Guests, b.Purpose, b.PaymentMode, b.Amount, b.Day, b.CreatedAt,
	)
	return err
}

const selectBooking = `SELECT id, reference, kind, item_id, name, mobile, email, date,
	check_in, check_out, guests, purpose, payment_mode, amount, day, created_at FROM bookings`

// GetBookingByReference returns the booking with the given reference id.
func (q *Queries) GetBookingByReference(ctx context.Context, ref string) (model.Booking, error) {
	var b model.Booking
	err := q.db.QueryRowContext(ctx, selectBooking+` WHERE reference = ?`, ref).Scan(
		&b.ID, &b.Reference, &b.Kind, &b.ItemID, &b.Name, &b.Mobile, &b.Email, &b.Date,
		&b.CheckIn, &b.CheckOut, &b.Guests, &b.Purpose, &b.PaymentMode, &b.Amount, &b.Day, &b.CreatedAt,
	)
	return b, err
}

// SevaBookingsByDay aggregates seva bookings grouped by weekday bucket.
// Each row counts as one booking plus its amount.
func (q *Queries) SevaBookingsByDay(ctx context.Context) (map[string]model.AnalyticsRow, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT day, COUNT(*), COALESCE(SUM(amount), 0)
		 FROM bookings WHERE kind = ? AND day != '' GROUP BY day`,
		model.BookingKindSeva)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	byDay := make(map[string]model.AnalyticsRow)
	for rows.Next() {
		var r model.AnalyticsRow
		if err := rows.Scan(&r.Label, &r.Bookings, &r.Amount); err != nil {
			return nil, err
		}
		byDay[r.Label] = r
	}
	return byDay, rows.Err()
}
