package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/resort-booking/internal/booking"
	"github.com/iliyamo/resort-booking/internal/daterange"
	"github.com/iliyamo/resort-booking/internal/model"
	"github.com/iliyamo/resort-booking/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	// maxCalendarDays caps ?days= on the calendar endpoint.
	maxCalendarDays = 366
)

// BookingSessionHandler exposes the date-selection flow. Sessions are
// identified only by their id; there are no accounts.
type BookingSessionHandler struct {
	Service *booking.Service
}

// NewBookingSessionHandler panics if svc is nil.
func NewBookingSessionHandler(svc *booking.Service) *BookingSessionHandler {
	if svc == nil {
		panic("nil service passed to NewBookingSessionHandler")
	}
	return &BookingSessionHandler{Service: svc}
}

type startSessionRequest struct {
	RoomID string `json:"room_id" validate:"required,max=36"`
}

type pickDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type setGuestsRequest struct {
	Guests *int `json:"guests" validate:"required"`
}

// SessionResponse is a booking session with its live quote. Unset dates are
// omitted.
type SessionResponse struct {
	ID               string          `json:"id"`
	RoomID           string          `json:"room_id"`
	RoomName         string          `json:"room_name"`
	NightlyRateCents int64           `json:"nightly_rate_cents"`
	Guests           int             `json:"guests"`
	Phase            string          `json:"phase"`
	CheckIn          string          `json:"check_in,omitempty"`
	CheckOut         string          `json:"check_out,omitempty"`
	Quote            daterange.Quote `json:"quote"`
}

// DayResponse is one calendar cell.
type DayResponse struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	daterange.DayFlags
}

// BookingResponse is a confirmed booking.
type BookingResponse struct {
	ID               string    `json:"id"`
	RoomID           string    `json:"room_id"`
	RoomName         string    `json:"room_name"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	Guests           int       `json:"guests"`
	Nights           int       `json:"nights"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	TotalCents       int64     `json:"total_cents"`
	Status           string    `json:"status"`
	ConfirmedAt      time.Time `json:"confirmed_at"`
}

func toSessionResponse(s booking.Session) SessionResponse {
	return SessionResponse{
		ID:               s.ID,
		RoomID:           s.RoomID,
		RoomName:         s.RoomName,
		NightlyRateCents: s.NightlyRateCents,
		Guests:           s.Guests,
		Phase:            s.Selection.Phase().String(),
		CheckIn:          formatDate(s.Selection.CheckIn),
		CheckOut:         formatDate(s.Selection.CheckOut),
		Quote:            s.Quote(),
	}
}

func toBookingResponse(b model.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		RoomID:           b.RoomID,
		RoomName:         b.RoomName,
		CheckIn:          formatDate(b.CheckIn),
		CheckOut:         formatDate(b.CheckOut),
		Guests:           b.Guests,
		Nights:           b.Nights,
		NightlyRateCents: b.NightlyRateCents,
		TotalCents:       b.TotalCents,
		Status:           b.Status,
		ConfirmedAt:      b.ConfirmedAt,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// sessionError maps booking and repository errors to HTTP responses.
func sessionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return errorJSON(c, http.StatusNotFound, "booking session not found")
	case errors.Is(err, repository.ErrRoomNotFound):
		return errorJSON(c, http.StatusNotFound, "room not found")
	case errors.Is(err, booking.ErrRoomUnavailable),
		errors.Is(err, booking.ErrIncompleteSelection),
		errors.Is(err, booking.ErrStaleSelection):
		return errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrConflict):
		return errorJSON(c, http.StatusConflict, "booking already exists")
	case errors.Is(err, daterange.ErrInvalidHorizon):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	default:
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError, "internal error")
	}
}

// Start handles POST /v1/booking-sessions. It opens a session for the given
// room with no dates selected and the default guest count.
func (h *BookingSessionHandler) Start(c echo.Context) error {
	var req startSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httpError(c, err)
	}
	sess, err := h.Service.Start(c.Request().Context(), req.RoomID)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusCreated, toSessionResponse(sess))
}

// Get handles GET /v1/booking-sessions/:id.
func (h *BookingSessionHandler) Get(c echo.Context) error {
	sess, err := h.Service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Calendar handles GET /v1/booking-sessions/:id/calendar?days=N. It returns
// N days starting today (default 60) with their render flags against the
// session's current selection.
func (h *BookingSessionHandler) Calendar(c echo.Context) error {
	days := daterange.DefaultHorizon
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxCalendarDays {
			return errorJSON(c, http.StatusBadRequest, "days must be between 1 and 366")
		}
		days = n
	}
	cal, err := h.Service.Calendar(c.Request().Context(), c.Param("id"), days)
	if err != nil {
		return sessionError(c, err)
	}
	out := make([]DayResponse, 0, len(cal.Days))
	for _, d := range cal.Days {
		out = append(out, DayResponse{
			Date:     formatDate(d.Date),
			Weekday:  d.Date.Weekday().String()[:3],
			DayFlags: d.DayFlags,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session": toSessionResponse(cal.Session),
		"today":   formatDate(cal.Today),
		"days":    out,
	})
}

// PickDate handles POST /v1/booking-sessions/:id/dates. A past date is not
// an error: the selection is returned unchanged with "applied": false.
func (h *BookingSessionHandler) PickDate(c echo.Context) error {
	var req pickDateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httpError(c, err)
	}
	picked, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "date must be a date in YYYY-MM-DD format")
	}
	sess, applied, err := h.Service.PickDate(c.Request().Context(), c.Param("id"), picked)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session": toSessionResponse(sess),
		"applied": applied,
	})
}

// SetGuests handles PUT /v1/booking-sessions/:id/guests. Out-of-range
// counts are clamped, not rejected.
func (h *BookingSessionHandler) SetGuests(c echo.Context) error {
	var req setGuestsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httpError(c, err)
	}
	sess, err := h.Service.SetGuests(c.Request().Context(), c.Param("id"), *req.Guests)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Quote handles GET /v1/booking-sessions/:id/quote.
func (h *BookingSessionHandler) Quote(c echo.Context) error {
	q, err := h.Service.Quote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

// Confirm handles POST /v1/booking-sessions/:id/confirm. It answers 409 with
// "please select check-in and check-out dates" until both dates are set.
func (h *BookingSessionHandler) Confirm(c echo.Context) error {
	conf, err := h.Service.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"booking": toBookingResponse(conf.Booking),
		"receipt": conf.Receipt,
	})
}

// Cancel handles DELETE /v1/booking-sessions/:id.
func (h *BookingSessionHandler) Cancel(c echo.Context) error {
	if err := h.Service.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return sessionError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
