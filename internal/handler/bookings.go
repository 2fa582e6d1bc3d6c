package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/resort-booking/internal/model"
	"github.com/iliyamo/resort-booking/internal/receipt"
	"github.com/iliyamo/resort-booking/internal/repository"
)

// BookingReader loads confirmed bookings.
type BookingReader interface {
	GetByID(ctx context.Context, id string) (*model.Booking, error)
}

// ReceiptVerifier checks that a receipt was issued for a booking.
type ReceiptVerifier interface {
	VerifyFor(raw, bookingID string) (*receipt.Claims, error)
}

// BookingHandler shows a confirmed booking to whoever holds its receipt.
type BookingHandler struct {
	Bookings BookingReader
	Receipts ReceiptVerifier
}

// NewBookingHandler panics if either dependency is nil.
func NewBookingHandler(bookings BookingReader, receipts ReceiptVerifier) *BookingHandler {
	if bookings == nil || receipts == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Receipts: receipts}
}

// Get handles GET /v1/bookings/:id. The receipt comes from ?receipt= or an
// "Authorization: Receipt <token>" header.
func (h *BookingHandler) Get(c echo.Context) error {
	id := c.Param("id")
	raw := c.QueryParam("receipt")
	if raw == "" {
		raw = strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Receipt ")
	}
	if raw == "" {
		return errorJSON(c, http.StatusUnauthorized, "receipt required")
	}
	if _, err := h.Receipts.VerifyFor(raw, id); err != nil {
		return errorJSON(c, http.StatusUnauthorized, "invalid receipt")
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return errorJSON(c, http.StatusNotFound, "booking not found")
		}
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, toBookingResponse(*b))
}
