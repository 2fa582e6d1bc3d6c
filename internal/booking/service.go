package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/resort-booking/internal/daterange"
	"github.com/iliyamo/resort-booking/internal/model"
	"github.com/iliyamo/resort-booking/internal/queue"
)

// Service coordinates booking sessions. Each session is independent; the
// store is the only shared state.
type Service struct {
	Rooms    RoomLookup
	Sessions SessionStore
	Bookings BookingWriter
	Receipts ReceiptSigner
	Events   EventPublisher
	Clock    Clock
	Location *time.Location
	Log      *logrus.Logger

	newID func() string
}

// NewService constructs a Service and panics if any dependency is nil. A nil
// loc means UTC.
func NewService(rooms RoomLookup, sessions SessionStore, bookings BookingWriter, receipts ReceiptSigner, events EventPublisher, clock Clock, loc *time.Location, log *logrus.Logger) *Service {
	if rooms == nil || sessions == nil || bookings == nil || receipts == nil || events == nil || clock == nil || log == nil {
		panic("nil dependency passed to booking.NewService")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		Rooms:    rooms,
		Sessions: sessions,
		Bookings: bookings,
		Receipts: receipts,
		Events:   events,
		Clock:    clock,
		Location: loc,
		Log:      log,
		newID:    uuid.NewString,
	}
}

// Today returns the current calendar date in the hotel's time zone.
func (s *Service) Today() time.Time {
	return daterange.Day(s.Clock.Now().In(s.Location))
}

// Start opens a session for roomID.
func (s *Service) Start(ctx context.Context, roomID string) (Session, error) {
	room, err := s.Rooms.Lookup(ctx, roomID)
	if err != nil {
		return Session{}, err
	}
	if !room.Available {
		return Session{}, ErrRoomUnavailable
	}
	sess := Session{
		ID:               s.newID(),
		RoomID:           room.ID,
		RoomName:         room.Name,
		NightlyRateCents: room.NightlyRateCents,
		RoomMaxGuests:    room.MaxGuests,
		Guests:           clampGuests(DefaultGuests, room.MaxGuests),
		CreatedAt:        s.Clock.Now().UTC(),
	}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	s.Log.WithFields(logrus.Fields{"session_id": sess.ID, "room_id": sess.RoomID}).Info("booking session started")
	return sess, nil
}

// Get returns the session with the given id.
func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	return s.Sessions.Get(ctx, id)
}

// Calendar returns the session and a horizon of days with render flags.
func (s *Service) Calendar(ctx context.Context, id string, days int) (Calendar, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return Calendar{}, err
	}
	today := s.Today()
	horizon, err := daterange.GenerateHorizon(today, days)
	if err != nil {
		return Calendar{}, err
	}
	out := make([]Day, 0, len(horizon))
	for _, d := range horizon {
		out = append(out, Day{Date: d.Date, DayFlags: d.Flags(sess.Selection, today)})
	}
	return Calendar{Session: sess, Today: today, Days: out}, nil
}

// PickDate applies one date pick. The returned bool is false when the pick
// was ignored because it lies in the past. Every accepted pick is saved, even
// one that leaves the selection unchanged, so it also refreshes the session's
// idle TTL.
func (s *Service) PickDate(ctx context.Context, id string, picked time.Time) (Session, bool, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return Session{}, false, err
	}
	today := s.Today()
	if daterange.Day(picked).Before(today) {
		return sess, false, nil
	}
	next := daterange.SelectDate(sess.Selection, picked, today)
	sess.Selection = next
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return Session{}, false, fmt.Errorf("save session: %w", err)
	}
	s.Log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"phase":      next.Phase().String(),
	}).Debug("date picked")
	return sess, true, nil
}

// SetGuests sets the guest count, clamped to the stepper bounds and the
// room's occupancy.
func (s *Service) SetGuests(ctx context.Context, id string, guests int) (Session, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	sess.Guests = clampGuests(guests, sess.RoomMaxGuests)
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Quote returns the session's current quote.
func (s *Service) Quote(ctx context.Context, id string) (daterange.Quote, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return daterange.Quote{}, err
	}
	return sess.Quote(), nil
}

// Confirm turns a complete selection into a booking, issues its receipt,
// publishes the confirmation event and closes the session. A failed publish
// is logged and does not fail the confirmation.
func (s *Service) Confirm(ctx context.Context, id string) (Confirmation, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return Confirmation{}, err
	}
	if !sess.Selection.Complete() {
		return Confirmation{}, ErrIncompleteSelection
	}
	if sess.Selection.CheckIn.Before(s.Today()) {
		return Confirmation{}, ErrStaleSelection
	}

	q := sess.Quote()
	b := model.Booking{
		ID:               s.newID(),
		RoomID:           sess.RoomID,
		RoomName:         sess.RoomName,
		CheckIn:          sess.Selection.CheckIn,
		CheckOut:         sess.Selection.CheckOut,
		Guests:           sess.Guests,
		Nights:           q.Nights,
		NightlyRateCents: sess.NightlyRateCents,
		TotalCents:       q.TotalPrice,
		Status:           model.BookingStatusConfirmed,
		ConfirmedAt:      s.Clock.Now().UTC().Truncate(time.Second),
	}
	if err := s.Bookings.Create(ctx, &b); err != nil {
		return Confirmation{}, fmt.Errorf("create booking: %w", err)
	}
	token, err := s.Receipts.Sign(b)
	if err != nil {
		return Confirmation{}, err
	}

	log := s.Log.WithFields(logrus.Fields{"session_id": sess.ID, "booking_id": b.ID})
	if err := s.Events.PublishBookingConfirmed(ctx, EventFor(b)); err != nil {
		log.WithError(err).Warn("booking confirmed but event not published")
	}
	if err := s.Sessions.Delete(ctx, sess.ID); err != nil {
		log.WithError(err).Warn("failed to delete confirmed session")
	}
	log.WithFields(logrus.Fields{"nights": b.Nights, "total_cents": b.TotalCents}).Info("booking confirmed")
	return Confirmation{Booking: b, Receipt: token}, nil
}

// Cancel discards a session.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if _, err := s.Sessions.Get(ctx, id); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, id)
}

// EventFor builds the broker event for a confirmed booking.
func EventFor(b model.Booking) queue.BookingConfirmedEvent {
	return queue.BookingConfirmedEvent{
		BookingID:        b.ID,
		RoomID:           b.RoomID,
		RoomName:         b.RoomName,
		CheckIn:          b.CheckIn.Format("2006-01-02"),
		CheckOut:         b.CheckOut.Format("2006-01-02"),
		Guests:           b.Guests,
		Nights:           b.Nights,
		NightlyRateCents: b.NightlyRateCents,
		TotalCents:       b.TotalCents,
		ConfirmedAt:      b.ConfirmedAt.Format(time.RFC3339),
	}
}

func clampGuests(n, roomMax int) int {
	upper := MaxGuests
	if roomMax > 0 && roomMax < upper {
		upper = roomMax
	}
	if n > upper {
		n = upper
	}
	if n < MinGuests {
		n = MinGuests
	}
	return n
}
