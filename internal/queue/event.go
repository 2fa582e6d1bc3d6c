// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedQueue is the durable queue confirmed bookings are
// published to.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published when a booking is confirmed. It carries
// enough for downstream consumers to log, notify, or feed analytics without
// querying the primary database. Dates are YYYY-MM-DD; ConfirmedAt is RFC3339.
type BookingConfirmedEvent struct {
	BookingID        string `json:"booking_id"`
	RoomID           string `json:"room_id"`
	RoomName         string `json:"room_name"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Guests           int    `json:"guests"`
	Nights           int    `json:"nights"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	TotalCents       int64  `json:"total_cents"`
	ConfirmedAt      string `json:"confirmed_at"`
}
