package model

// Room is a bookable room type within a resort. NightlyRateCents is the
// rate the booking flow prices a stay with.
//
// Fields:
//
//	ID                 – primary key identifier.
//	ResortID           – resort the room belongs to.
//	Name               – display name (e.g. "Deluxe Room").
//	Type               – room category (Suite, Deluxe, ...).
//	NightlyRateCents   – price per night in cents.
//	OriginalPriceCents – pre-discount nightly price, 0 when none.
//	Description        – short description for the room detail screen.
//	Images             – image URLs.
//	Amenities          – amenity labels.
//	MaxGuests          – occupancy limit.
//	BedType            – bed description.
//	SizeSqm            – floor area in square metres.
//	Available          – whether the room accepts new bookings.
type Room struct {
	ID                 string   // rooms.id
	ResortID           string   // rooms.resort_id
	Name               string   // rooms.name
	Type               string   // rooms.type
	NightlyRateCents   int64    // rooms.nightly_rate_cents
	OriginalPriceCents int64    // rooms.original_price_cents (NULL -> 0)
	Description        string   // rooms.description
	Images             []string // rooms.images (JSON array)
	Amenities          []string // rooms.amenities (JSON array)
	MaxGuests          int      // rooms.max_guests
	BedType            string   // rooms.bed_type
	SizeSqm            int      // rooms.size_sqm
	Available          bool     // rooms.available
}
