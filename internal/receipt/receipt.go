// Package receipt issues and verifies signed booking receipts. A receipt is
// an HS256 JWT whose subject is the booking id; holding it is what lets a
// guest look a booking up again without an account.
package receipt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/resort-booking/internal/model"
)

// ErrInvalidReceipt is returned for tokens that fail parsing, signature or
// expiry checks.
var ErrInvalidReceipt = errors.New("invalid receipt")

// Claims are the fields carried by a receipt token.
type Claims struct {
	RoomID     string `json:"room"`
	Nights     int    `json:"nights"`
	TotalCents int64  `json:"total_cents"`
	jwt.RegisteredClaims
}

// Signer signs and verifies receipts with a shared secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner returns a Signer. A non-positive ttl issues tokens without an
// expiry.
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign builds a receipt for b.
func (s *Signer) Sign(b model.Booking) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		RoomID:     b.RoomID,
		Nights:     b.Nights,
		TotalCents: b.TotalCents,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  b.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign receipt: %w", err)
	}
	return signed, nil
}

// Verify parses raw and returns its claims. Tokens signed with anything other
// than HMAC are rejected.
func (s *Signer) Verify(raw string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidReceipt
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidReceipt
	}
	return &claims, nil
}

// VerifyFor checks raw and that it was issued for bookingID.
func (s *Signer) VerifyFor(raw, bookingID string) (*Claims, error) {
	claims, err := s.Verify(raw)
	if err != nil {
		return nil, err
	}
	if claims.Subject != bookingID {
		return nil, ErrInvalidReceipt
	}
	return claims, nil
}
