package model

import "time"

// BookingStatusConfirmed is the only status a booking is created with.
const BookingStatusConfirmed = "CONFIRMED"

// Booking records a confirmed stay. CheckIn and CheckOut are calendar dates
// (midnight UTC); Nights and TotalCents are the quote at confirmation time.
type Booking struct {
	ID               string    // bookings.id (uuid)
	RoomID           string    // bookings.room_id
	RoomName         string    // bookings.room_name
	CheckIn          time.Time // bookings.check_in (DATE)
	CheckOut         time.Time // bookings.check_out (DATE)
	Guests           int       // bookings.guests
	Nights           int       // bookings.nights
	NightlyRateCents int64     // bookings.nightly_rate_cents
	TotalCents       int64     // bookings.total_cents
	Status           string    // bookings.status
	ConfirmedAt      time.Time // bookings.confirmed_at
}
