package repository

// The resort catalog is read-only at runtime and seeded by the database
// migrations.

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iliyamo/resort-booking/internal/model"
)

const resortColumns = `id, name, location, rating, review_count, price_cents, original_price_cents, discount_percent,
    images, amenities, description, featured, latitude, longitude, created_at`

// ResortRepo encapsulates the queries on the resorts table.
type ResortRepo struct {
	db *sql.DB
}

// NewResortRepo constructs a ResortRepo with the provided DB handle.
func NewResortRepo(db *sql.DB) *ResortRepo {
	return &ResortRepo{db: db}
}

// ListAll returns every resort, featured first, then by rating.
func (r *ResortRepo) ListAll(ctx context.Context) ([]model.Resort, error) {
	const q = `SELECT ` + resortColumns + ` FROM resorts ORDER BY featured DESC, rating DESC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Resort
	for rows.Next() {
		res, err := scanResort(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetByID fetches a resort by id. It returns ErrResortNotFound if no row is
// found.
func (r *ResortRepo) GetByID(ctx context.Context, id string) (*model.Resort, error) {
	const q = `SELECT ` + resortColumns + ` FROM resorts WHERE id = ?`
	res, err := scanResort(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResortNotFound
		}
		return nil, err
	}
	return &res, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResort(s scanner) (model.Resort, error) {
	var (
		res                model.Resort
		original, discount sql.NullInt64
		images, amenities  []byte
	)
	err := s.Scan(&res.ID, &res.Name, &res.Location, &res.Rating, &res.ReviewCount, &res.PriceCents,
		&original, &discount, &images, &amenities,
		&res.Description, &res.Featured, &res.Latitude, &res.Longitude, &res.CreatedAt)
	if err != nil {
		return res, err
	}
	res.OriginalPriceCents = original.Int64
	res.DiscountPercent = int(discount.Int64)
	if res.Images, err = decodeList(images); err != nil {
		return res, fmt.Errorf("resort %s images: %w", res.ID, err)
	}
	if res.Amenities, err = decodeList(amenities); err != nil {
		return res, fmt.Errorf("resort %s amenities: %w", res.ID, err)
	}
	return res, nil
}

// decodeList reads a JSON array column. NULL decodes to an empty list.
func decodeList(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
