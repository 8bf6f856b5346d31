package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/educenter/room-scheduler/internal/repository"
	"github.com/educenter/room-scheduler/internal/schedule"
)

// BookSlot handles POST /v1/rooms/book-slot. The body carries the class,
// course and teacher being scheduled plus the target room, slot number and
// date. The booking is rejected when the room is missing or not bookable,
// when the slot number is outside the catalog, when the date falls on a
// Sunday (outside the grid), and with 409 when the cell already has an
// occupant. Nothing is written on any failure path.
func (h *RoomHandler) BookSlot(c echo.Context) error {
	var body struct {
		ClassID     uint64 `json:"classId"`
		CourseID    uint64 `json:"courseId"`
		TeacherID   uint64 `json:"teacherId"`
		RoomID      uint64 `json:"roomId"`
		SlotNumber  int    `json:"slotNumber"`
		Date        string `json:"date"`
		ClassName   string `json:"className"`
		CourseName  string `json:"courseName"`
		TeacherName string `json:"teacherName"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.RoomID == 0 || body.ClassID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId and classId are required"})
	}
	slot, ok := schedule.SlotByNumber(body.SlotNumber)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown slot number"})
	}
	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(body.Date), time.Local)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be formatted as YYYY-MM-DD"})
	}
	dayName := date.Weekday().String()
	if schedule.DayIndex(dayName) < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookings are limited to Monday through Saturday"})
	}

	ctx := c.Request().Context()
	room, err := h.Rooms.GetByID(ctx, body.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !room.Bookable() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room is not bookable in its current status"})
	}

	b := &repository.Booking{
		RoomID:      room.ID,
		ClassID:     body.ClassID,
		CourseID:    body.CourseID,
		TeacherID:   body.TeacherID,
		ClassName:   strings.TrimSpace(body.ClassName),
		CourseName:  strings.TrimSpace(body.CourseName),
		TeacherName: strings.TrimSpace(body.TeacherName),
		DayOfWeek:   dayName,
		TimeSlot:    slot.StartLabel,
		SlotNumber:  slot.Number,
		StartDate:   date,
		EndDate:     date,
	}
	// The store checks cell occupancy and inserts atomically, so two
	// requests racing for the same free cell cannot both succeed.
	if err := h.Bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": repository.ErrSlotTaken.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}

	// Event delivery is best effort; the booking is already durable.
	if h.Events != nil {
		_ = h.Events.BookingCreated(ctx, b, room.RoomCode)
	}
	return c.JSON(http.StatusCreated, b)
}

// CancelBooking handles DELETE /v1/rooms/bookings/:id. A missing booking
// yields 404; success yields 204 with no body, after which clients are
// expected to refetch the schedule.
func (h *RoomHandler) CancelBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx := c.Request().Context()

	// Load before delete so the cancellation event can describe the booking.
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete booking"})
	}

	if h.Events != nil {
		_ = h.Events.BookingCancelled(ctx, b)
	}
	return c.NoContent(http.StatusNoContent)
}
