package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/resort-booking/internal/handler"
)

func TestRoutesRegistered(t *testing.T) {
	e := echo.New()
	// short-circuits so handlers with no dependencies are never reached
	mark := func(name string) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return c.String(http.StatusTeapot, name) }
		}
	}
	RegisterRoutes(e)
	RegisterCatalog(e, &handler.CatalogHandler{}, mark("cache"))
	RegisterBooking(e, &handler.BookingSessionHandler{}, &handler.BookingHandler{}, mark("limit"))

	want := map[string]bool{
		http.MethodGet + " /healthz":                          false,
		http.MethodGet + " /v1/resorts":                       false,
		http.MethodGet + " /v1/resorts/:id":                   false,
		http.MethodGet + " /v1/resorts/:id/rooms":             false,
		http.MethodPost + " /v1/booking-sessions":             false,
		http.MethodGet + " /v1/booking-sessions/:id":          false,
		http.MethodDelete + " /v1/booking-sessions/:id":       false,
		http.MethodGet + " /v1/booking-sessions/:id/calendar": false,
		http.MethodPost + " /v1/booking-sessions/:id/dates":   false,
		http.MethodPut + " /v1/booking-sessions/:id/guests":   false,
		http.MethodGet + " /v1/booking-sessions/:id/quote":    false,
		http.MethodPost + " /v1/booking-sessions/:id/confirm": false,
		http.MethodGet + " /v1/bookings/:id":                  false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("route %s not registered", k)
		}
	}

	tests := []struct {
		method, path string
		code         int
		body         string
	}{
		{http.MethodGet, "/healthz", http.StatusOK, "ok"},
		{http.MethodGet, "/v1/resorts/1/rooms", http.StatusTeapot, "cache"},
		{http.MethodPost, "/v1/booking-sessions", http.StatusTeapot, "limit"},
		{http.MethodPost, "/v1/booking-sessions/abc/confirm", http.StatusTeapot, "limit"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.code || rec.Body.String() != tt.body {
			t.Errorf("%s %s = %d %q, want %d %q", tt.method, tt.path, rec.Code, rec.Body.String(), tt.code, tt.body)
		}
	}
}
