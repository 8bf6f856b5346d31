package handler // handler package contains the room and catalog endpoints

import (
	"net/http" // http defines status code constants
	"strconv"  // strconv parses query parameters
	"strings"  // strings normalizes query parameter values

	"github.com/labstack/echo/v4" // echo framework supplies request context
)

// ListRooms handles GET /v1/rooms. The optional ?active=true|false query
// parameter filters on the is_active flag; without it all rooms are
// returned. An empty room list is an empty-state response, not an error.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	var activeOnly *bool
	if raw := strings.TrimSpace(c.QueryParam("active")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "active must be true or false"})
		}
		activeOnly = &v
	}
	items, err := h.Rooms.List(c.Request().Context(), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListRoomTypes handles GET /v1/rooms/types and returns the room type
// catalog.
func (h *RoomHandler) ListRoomTypes(c echo.Context) error {
	items, err := h.Catalogs.RoomTypes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ListRoomStatuses handles GET /v1/rooms/statuses and returns the room
// status catalog.
func (h *RoomHandler) ListRoomStatuses(c echo.Context) error {
	items, err := h.Catalogs.RoomStatuses(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
