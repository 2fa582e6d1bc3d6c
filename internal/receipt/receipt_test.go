package receipt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/resort-booking/internal/model"
)

func fixedSigner(secret string, ttl time.Duration, at time.Time) *Signer {
	s := NewSigner(secret, ttl)
	s.now = func() time.Time { return at }
	return s
}

func TestSignVerify(t *testing.T) {
	at := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	s := fixedSigner("secret", time.Hour, at)
	tok, err := s.Sign(model.Booking{ID: "b-1", RoomID: "r2", Nights: 3, TotalCents: 59700})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	claims, err := s.VerifyFor(tok, "b-1")
	if err != nil {
		t.Fatalf("VerifyFor: %v", err)
	}
	if claims.RoomID != "r2" || claims.Nights != 3 || claims.TotalCents != 59700 {
		t.Errorf("claims = %+v", claims)
	}
	if _, err := s.VerifyFor(tok, "b-2"); err != ErrInvalidReceipt {
		t.Errorf("wrong booking id: err = %v, want ErrInvalidReceipt", err)
	}
}

func TestVerify_Rejects(t *testing.T) {
	at := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	s := fixedSigner("secret", time.Hour, at)
	tok, _ := s.Sign(model.Booking{ID: "b-1"})

	other := fixedSigner("other", time.Hour, at)
	if _, err := other.Verify(tok); err != ErrInvalidReceipt {
		t.Errorf("wrong secret: err = %v", err)
	}

	later := fixedSigner("secret", time.Hour, at.Add(2*time.Hour))
	if _, err := later.Verify(tok); err != ErrInvalidReceipt {
		t.Errorf("expired: err = %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "b-1"})
	raw, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := s.Verify(raw); err != ErrInvalidReceipt {
		t.Errorf("alg none: err = %v", err)
	}

	if _, err := s.Verify("garbage"); err != ErrInvalidReceipt {
		t.Errorf("garbage: err = %v", err)
	}
}
