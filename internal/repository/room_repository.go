package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/resort-booking/internal/model"
)

const roomColumns = `id, resort_id, name, type, nightly_rate_cents, original_price_cents, description,
    images, amenities, max_guests, bed_type, size_sqm, available`

// RoomRepo manages read access to the rooms table.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// ListByResort returns the rooms of a resort ordered by price.
func (r *RoomRepo) ListByResort(ctx context.Context, resortID string) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE resort_id = ? ORDER BY nightly_rate_cents ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, resortID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

// GetByID fetches a single room. It returns ErrRoomNotFound when the id is
// unknown.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	room, err := scanRoom(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// Lookup is GetByID by value; it lets RoomRepo serve the booking service.
func (r *RoomRepo) Lookup(ctx context.Context, id string) (model.Room, error) {
	room, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Room{}, err
	}
	return *room, nil
}

func scanRoom(s scanner) (model.Room, error) {
	var (
		room              model.Room
		original          sql.NullInt64
		description       sql.NullString
		images, amenities []byte
	)
	err := s.Scan(&room.ID, &room.ResortID, &room.Name, &room.Type, &room.NightlyRateCents,
		&original, &description, &images, &amenities,
		&room.MaxGuests, &room.BedType, &room.SizeSqm, &room.Available)
	if err != nil {
		return room, err
	}
	room.OriginalPriceCents = original.Int64
	room.Description = description.String
	if room.Images, err = decodeList(images); err != nil {
		return room, fmt.Errorf("room %s images: %w", room.ID, err)
	}
	if room.Amenities, err = decodeList(amenities); err != nil {
		return room, fmt.Errorf("room %s amenities: %w", room.ID, err)
	}
	return room, nil
}
