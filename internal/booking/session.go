// Package booking runs the date-selection flow for a single room. It owns the
// persisted session, supplies "today" and the nightly rate to the daterange
// core, and turns a complete selection into a confirmed booking.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/resort-booking/internal/daterange"
	"github.com/iliyamo/resort-booking/internal/model"
	"github.com/iliyamo/resort-booking/internal/queue"
)

// Guest bounds of the guest stepper.
const (
	MinGuests     = 1
	MaxGuests     = 8
	DefaultGuests = 2
)

var (
	ErrSessionNotFound     = errors.New("booking session not found")
	ErrRoomUnavailable     = errors.New("room is not available for booking")
	ErrIncompleteSelection = errors.New("please select check-in and check-out dates")
	ErrStaleSelection      = errors.New("check-in date has already passed")
)

// Session is one in-progress booking flow.
type Session struct {
	ID               string              `json:"id"`
	RoomID           string              `json:"room_id"`
	RoomName         string              `json:"room_name"`
	NightlyRateCents int64               `json:"nightly_rate_cents"`
	RoomMaxGuests    int                 `json:"room_max_guests,omitempty"`
	Guests           int                 `json:"guests"`
	Selection        daterange.Selection `json:"selection"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Quote prices the session's selection at its room rate.
func (s Session) Quote() daterange.Quote {
	return daterange.ComputeQuote(s.Selection, s.NightlyRateCents)
}

// Day is one horizon entry with its render flags.
type Day struct {
	Date time.Time
	daterange.DayFlags
}

// Calendar is a session together with its selectable horizon.
type Calendar struct {
	Session Session
	Today   time.Time
	Days    []Day
}

// Confirmation is the result of confirming a session.
type Confirmation struct {
	Booking model.Booking
	Receipt string
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// RoomLookup resolves a room id to its catalog entry. Unknown ids return
// repository.ErrRoomNotFound.
type RoomLookup interface {
	Lookup(ctx context.Context, roomID string) (model.Room, error)
}

// SessionStore persists sessions between requests. Missing or expired ids
// return ErrSessionNotFound.
type SessionStore interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}

// BookingWriter persists confirmed bookings.
type BookingWriter interface {
	Create(ctx context.Context, b *model.Booking) error
}

// ReceiptSigner issues the receipt handed back on confirmation.
type ReceiptSigner interface {
	Sign(b model.Booking) (string, error)
}

// EventPublisher announces confirmed bookings.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}
