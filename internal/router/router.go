// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/educenter/room-scheduler/internal/handler"
)

// RegisterRoutes registers the health check on the provided Echo instance.
// Load balancers and monitoring probe this endpoint to verify the service
// is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterRooms registers the room, schedule and booking endpoints under
// /v1. The read endpoints are the ones worth wrapping in the Redis cache
// middleware; callers pass it as cacheMW (use nil-safe pass-through when
// caching is disabled). Mutations are never cached.
func RegisterRooms(e *echo.Echo, h *handler.RoomHandler, cacheMW echo.MiddlewareFunc) {
	g := e.Group("/v1/rooms")

	// Catalog and schedule reads. The schedule endpoint varies on its
	// weekStart/weekEnd query, which the cache key incorporates.
	g.GET("", h.ListRooms, cacheMW)
	g.GET("/types", h.ListRoomTypes, cacheMW)
	g.GET("/statuses", h.ListRoomStatuses, cacheMW)
	g.GET("/schedule", h.GetWeekSchedule, cacheMW)

	// Slot detail is read on demand when staff click a cell; it must show
	// bookings made seconds ago, so it bypasses the cache.
	g.GET("/:id/slot-info", h.GetSlotInfo)

	// Booking mutations.
	g.POST("/book-slot", h.BookSlot)
	g.DELETE("/bookings/:id", h.CancelBooking)
}
