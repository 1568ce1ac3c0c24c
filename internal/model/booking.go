package model

import "time"

// Booking kinds.
const (
	BookingKindSeva = "seva"
	BookingKindRoom = "room"
)

// Payment modes accepted for seva bookings.
const (
	PaymentModeUPI        = "upi"
	PaymentModeCard       = "card"
	PaymentModeNetbanking = "netbanking"
)

// Seva is a bookable ritual service.
type Seva struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // rupees
}

// RoomType is an accommodation category at the matha guest house.
type RoomType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rate        int64  `json:"rate"` // rupees per night (per bed for dormitory)
	PerBed      bool   `json:"per_bed"`
}

// Booking is a stored seva or room booking request.
type Booking struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	Kind        string    `json:"kind"`
	ItemID      string    `json:"item_id"` // seva id or room type id
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	Email       string    `json:"email,omitempty"`
	Date        string    `json:"date,omitempty"`      // seva date
	CheckIn     string    `json:"check_in,omitempty"`  // room bookings
	CheckOut    string    `json:"check_out,omitempty"` // room bookings
	Guests      int       `json:"guests,omitempty"`
	Purpose     string    `json:"purpose,omitempty"`
	PaymentMode string    `json:"payment_mode,omitempty"`
	Amount      int64     `json:"amount"`
	Day         string    `json:"day"` // weekday bucket used by analytics
	CreatedAt   time.Time `json:"created_at"`
}
