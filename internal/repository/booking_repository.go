package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/resort-booking/internal/model"
)

// BookingRepo persists confirmed bookings. check_in and check_out are DATE
// columns; with parseTime=true and loc=UTC they scan back as UTC midnights.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts b. The caller supplies the id. A duplicate key maps to
// ErrConflict.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
        (id, room_id, room_name, check_in, check_out, guests, nights, nightly_rate_cents, total_cents, status, confirmed_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		b.ID, b.RoomID, b.RoomName,
		b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
		b.Guests, b.Nights, b.NightlyRateCents, b.TotalCents, b.Status, b.ConfirmedAt,
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == 1062 {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByID loads a booking. It returns ErrBookingNotFound for unknown ids.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	const q = `SELECT id, room_id, room_name, check_in, check_out, guests, nights, nightly_rate_cents, total_cents, status, confirmed_at
        FROM bookings WHERE id = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.RoomID, &b.RoomName, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.Nights, &b.NightlyRateCents, &b.TotalCents, &b.Status, &b.ConfirmedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}
