package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/resort-booking/internal/booking"
	"github.com/iliyamo/resort-booking/internal/daterange"
)

// compile-time checks
var (
	_ booking.SessionStore = (*MemoryStore)(nil)
	_ booking.SessionStore = (*RedisStore)(nil)
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, booking.ErrSessionNotFound) {
		t.Fatalf("Get missing: err = %v, want ErrSessionNotFound", err)
	}

	s := booking.Session{
		ID:     "s1",
		RoomID: "r1",
		Guests: 2,
		Selection: daterange.Selection{
			CheckIn: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	if err := m.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := m.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.RoomID != "r1" || !got.Selection.Equal(s.Selection) {
		t.Errorf("Get = %+v, want %+v", got, s)
	}

	if err := m.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, "s1"); !errors.Is(err, booking.ErrSessionNotFound) {
		t.Errorf("Get after delete: err = %v", err)
	}
}

func TestRedisStoreKey(t *testing.T) {
	r := NewRedisStore(nil, "", 0)
	if got := r.key("abc"); got != "booking:session:abc" {
		t.Errorf("key = %q", got)
	}
	if r.ttl != DefaultSessionTTL {
		t.Errorf("ttl = %s, want %s", r.ttl, DefaultSessionTTL)
	}
}
