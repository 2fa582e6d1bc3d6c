// Package router registers the API routes and their middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/resort-booking/internal/handler"
)

// RegisterRoutes registers routes that need no dependencies.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the public resort catalog under /v1. cache is
// applied to every catalog route.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/resorts", cache)
	g.GET("", h.ListResorts)
	g.GET("/:id", h.GetResort)
	g.GET("/:id/rooms", h.ListResortRooms)
}

// RegisterBooking registers the booking-session flow and receipt lookups.
// limit guards the session routes, which write to the session store.
func RegisterBooking(e *echo.Echo, s *handler.BookingSessionHandler, b *handler.BookingHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/booking-sessions", limit)
	g.POST("", s.Start)
	g.GET("/:id", s.Get)
	g.DELETE("/:id", s.Cancel)
	g.GET("/:id/calendar", s.Calendar)
	g.POST("/:id/dates", s.PickDate)
	g.PUT("/:id/guests", s.SetGuests)
	g.GET("/:id/quote", s.Quote)
	g.POST("/:id/confirm", s.Confirm)

	e.GET("/v1/bookings/:id", b.Get)
}
