package model

import "time"

// Resort is a property that offers rooms for booking. It corresponds to a
// row in the `resorts` table.
//
// Fields:
//
//	ID                 – primary key identifier (short string id).
//	Name               – display name.
//	Location           – free-form location label (city, country).
//	Rating             – average guest rating, 0–5.
//	ReviewCount        – number of reviews behind Rating.
//	PriceCents         – "from" nightly price shown in listings.
//	OriginalPriceCents – pre-discount price, 0 when the resort is not on sale.
//	DiscountPercent    – advertised discount, 0 when none.
//	Images             – gallery image URLs, first one is the cover.
//	Amenities          – amenity labels shown on the detail screen.
//	Description        – marketing description.
//	Featured           – whether the resort is shown in the featured carousel.
//	Latitude           – WGS84 latitude.
//	Longitude          – WGS84 longitude.
//	CreatedAt          – creation timestamp.
type Resort struct {
	ID                 string    // resorts.id
	Name               string    // resorts.name
	Location           string    // resorts.location
	Rating             float64   // resorts.rating
	ReviewCount        uint32    // resorts.review_count
	PriceCents         int64     // resorts.price_cents
	OriginalPriceCents int64     // resorts.original_price_cents (NULL -> 0)
	DiscountPercent    int       // resorts.discount_percent (NULL -> 0)
	Images             []string  // resorts.images (JSON array)
	Amenities          []string  // resorts.amenities (JSON array)
	Description        string    // resorts.description
	Featured           bool      // resorts.featured
	Latitude           float64   // resorts.latitude
	Longitude          float64   // resorts.longitude
	CreatedAt          time.Time // resorts.created_at
}
