package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/resort-booking/internal/model"
	"github.com/iliyamo/resort-booking/internal/repository"
)

// ResortReader is the read side of the resort catalog.
type ResortReader interface {
	ListAll(ctx context.Context) ([]model.Resort, error)
	GetByID(ctx context.Context, id string) (*model.Resort, error)
}

// RoomLister lists the rooms of a resort.
type RoomLister interface {
	ListByResort(ctx context.Context, resortID string) ([]model.Room, error)
}

// CatalogHandler serves the public, read-only resort catalog. Responses are
// safe to cache.
type CatalogHandler struct {
	Resorts ResortReader
	Rooms   RoomLister
}

// NewCatalogHandler panics if either dependency is nil.
func NewCatalogHandler(resorts ResortReader, rooms RoomLister) *CatalogHandler {
	if resorts == nil || rooms == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{Resorts: resorts, Rooms: rooms}
}

// Coordinates is a resort's map position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ResortResponse is a resort as exposed by the API. Coordinates are omitted
// for resorts without a map position; the original price and discount only
// appear when the resort is on sale.
type ResortResponse struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Location           string       `json:"location"`
	Rating             float64      `json:"rating"`
	ReviewCount        uint32       `json:"review_count"`
	PriceCents         int64        `json:"price_cents"`
	OriginalPriceCents int64        `json:"original_price_cents,omitempty"`
	DiscountPercent    int          `json:"discount_percent,omitempty"`
	Images             []string     `json:"images"`
	Amenities          []string     `json:"amenities"`
	Description        string       `json:"description"`
	Featured           bool         `json:"featured"`
	Coordinates        *Coordinates `json:"coordinates,omitempty"`
}

// RoomResponse is a room as exposed by the API. OriginalPriceCents is only
// set when the room is discounted.
type RoomResponse struct {
	ID                 string   `json:"id"`
	ResortID           string   `json:"resort_id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	NightlyRateCents   int64    `json:"nightly_rate_cents"`
	OriginalPriceCents int64    `json:"original_price_cents,omitempty"`
	Description        string   `json:"description"`
	Images             []string `json:"images"`
	Amenities          []string `json:"amenities"`
	MaxGuests          int      `json:"max_guests"`
	BedType            string   `json:"bed_type"`
	SizeSqm            int      `json:"size_sqm"`
	Available          bool     `json:"available"`
}

func toResortResponse(r model.Resort) ResortResponse {
	out := ResortResponse{
		ID:                 r.ID,
		Name:               r.Name,
		Location:           r.Location,
		Rating:             r.Rating,
		ReviewCount:        r.ReviewCount,
		PriceCents:         r.PriceCents,
		OriginalPriceCents: r.OriginalPriceCents,
		DiscountPercent:    r.DiscountPercent,
		Images:             nonNil(r.Images),
		Amenities:          nonNil(r.Amenities),
		Description:        r.Description,
		Featured:           r.Featured,
	}
	if r.Latitude != 0 || r.Longitude != 0 {
		out.Coordinates = &Coordinates{Latitude: r.Latitude, Longitude: r.Longitude}
	}
	return out
}

func toRoomResponse(r model.Room) RoomResponse {
	return RoomResponse{
		ID:                 r.ID,
		ResortID:           r.ResortID,
		Name:               r.Name,
		Type:               r.Type,
		NightlyRateCents:   r.NightlyRateCents,
		OriginalPriceCents: r.OriginalPriceCents,
		Description:        r.Description,
		Images:             nonNil(r.Images),
		Amenities:          nonNil(r.Amenities),
		MaxGuests:          r.MaxGuests,
		BedType:            r.BedType,
		SizeSqm:            r.SizeSqm,
		Available:          r.Available,
	}
}

// nonNil keeps empty lists as [] rather than null in JSON.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ListResorts handles GET /v1/resorts. With ?featured=true only featured
// resorts are returned.
func (h *CatalogHandler) ListResorts(c echo.Context) error {
	resorts, err := h.Resorts.ListAll(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	featuredOnly := c.QueryParam("featured") == "true"
	out := make([]ResortResponse, 0, len(resorts))
	for _, r := range resorts {
		if featuredOnly && !r.Featured {
			continue
		}
		out = append(out, toResortResponse(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetResort handles GET /v1/resorts/:id.
func (h *CatalogHandler) GetResort(c echo.Context) error {
	r, err := h.Resorts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrResortNotFound) {
			return errorJSON(c, http.StatusNotFound, "resort not found")
		}
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, toResortResponse(*r))
}

// ListResortRooms handles GET /v1/resorts/:id/rooms. An unknown resort is a
// 404 rather than an empty list.
func (h *CatalogHandler) ListResortRooms(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.Resorts.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrResortNotFound) {
			return errorJSON(c, http.StatusNotFound, "resort not found")
		}
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	rooms, err := h.Rooms.ListByResort(ctx, id)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomResponse(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
