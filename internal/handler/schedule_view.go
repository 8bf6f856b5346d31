package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/educenter/room-scheduler/internal/repository"
	"github.com/educenter/room-scheduler/internal/schedule"
)

// dateLayout is the wire format for calendar dates across the API.
const dateLayout = "2006-01-02"

// slotEntry is one cell of a room's daily schedule as rendered to clients.
type slotEntry struct {
	SlotNumber  int    `json:"slotNumber"`
	StartLabel  string `json:"startLabel"`
	EndLabel    string `json:"endLabel"`
	IsBooked    bool   `json:"isBooked"`
	BookingID   uint64 `json:"bookingId,omitempty"`
	ClassName   string `json:"className,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
	TeacherName string `json:"teacherName,omitempty"`
}

// roomSchedule is one room with its per-day slot entries, keyed by the
// English weekday name.
type roomSchedule struct {
	Room     *repository.Room       `json:"room"`
	Schedule map[string][]slotEntry `json:"schedule"`
}

// GetWeekSchedule handles
// GET /v1/rooms/schedule?weekStart=YYYY-MM-DD&weekEnd=YYYY-MM-DD.
// weekStart is required and anchors the displayed week; it is normalized to
// that week's Monday, so clients may pass any day of the week. weekEnd is
// optional and defaults to the Saturday of the same week. The response maps
// every active room to six day columns of five slot entries each, with
// occupancy resolved through the day/slot matcher.
func (h *RoomHandler) GetWeekSchedule(c echo.Context) error {
	startRaw := c.QueryParam("weekStart")
	if startRaw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "weekStart is required"})
	}
	start, err := time.ParseInLocation(dateLayout, startRaw, time.Local)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "weekStart must be formatted as YYYY-MM-DD"})
	}
	week := schedule.WindowFrom(start)
	end := week.Days[schedule.GridDays-1].Date // Saturday
	if endRaw := c.QueryParam("weekEnd"); endRaw != "" {
		e, err := time.ParseInLocation(dateLayout, endRaw, time.Local)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "weekEnd must be formatted as YYYY-MM-DD"})
		}
		end = e
	}

	ctx := c.Request().Context()
	active := true
	rooms, err := h.Rooms.List(ctx, &active)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	roomIDs := make([]uint64, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.ID)
	}
	byRoom, err := h.Bookings.ListForRoomsInRange(ctx, roomIDs, week.Monday, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	occupants := make(map[uint64][]schedule.Occupant, len(byRoom))
	for roomID, list := range byRoom {
		occ := make([]schedule.Occupant, 0, len(list))
		for _, b := range list {
			occ = append(occ, toOccupant(b))
		}
		occupants[roomID] = occ
	}
	grid := schedule.Assemble(roomIDs, occupants, week)

	out := make([]roomSchedule, 0, len(rooms))
	for _, room := range rooms {
		days := make(map[string][]slotEntry, schedule.GridDays)
		for dayIdx := 0; dayIdx < schedule.GridDays; dayIdx++ {
			entries := make([]slotEntry, 0, len(schedule.Slots))
			for _, slot := range schedule.Slots {
				e := slotEntry{SlotNumber: slot.Number, StartLabel: slot.StartLabel, EndLabel: slot.EndLabel}
				if occ, ok := grid[schedule.CellKey{RoomID: room.ID, DayIndex: dayIdx, SlotNumber: slot.Number}]; ok {
					e.IsBooked = true
					e.BookingID = occ.ID
					e.ClassName = occ.ClassName
					e.CourseName = occ.CourseName
					e.TeacherName = occ.TeacherName
				}
				entries = append(entries, e)
			}
			days[schedule.GridDayName(dayIdx)] = entries
		}
		out = append(out, roomSchedule{Room: room, Schedule: days})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"weekStart": week.Monday.Format(dateLayout),
		"weekEnd":   end.Format(dateLayout),
		"items":     out,
	})
}

// GetSlotInfo handles GET /v1/rooms/:id/slot-info?date=&slotNumber= and
// returns the detail of a single grid cell, including the current occupant
// when the cell is booked.
func (h *RoomHandler) GetSlotInfo(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || roomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	date, err := time.ParseInLocation(dateLayout, c.QueryParam("date"), time.Local)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be formatted as YYYY-MM-DD"})
	}
	slotNumber, err := strconv.Atoi(c.QueryParam("slotNumber"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slotNumber must be a number"})
	}
	slot, ok := schedule.SlotByNumber(slotNumber)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown slot number"})
	}

	ctx := c.Request().Context()
	room, err := h.Rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	occupant, err := h.findOccupant(ctx, roomID, date, slot)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	resp := echo.Map{
		"room":     room,
		"date":     date.Format(dateLayout),
		"slot":     slot,
		"isBooked": occupant != nil,
		"bookable": room.Bookable(),
	}
	if occupant != nil {
		resp["booking"] = occupant
	}
	return c.JSON(http.StatusOK, resp)
}

// findOccupant resolves which booking, if any, occupies the cell addressed
// by room, date and slot. Bookings are evaluated in list order so the
// first match wins, mirroring grid assembly.
func (h *RoomHandler) findOccupant(ctx context.Context, roomID uint64, date time.Time, slot schedule.TimeSlot) (*repository.Booking, error) {
	dayIdx := schedule.DayIndex(date.Weekday().String())
	if dayIdx < 0 {
		return nil, nil // Sunday is outside the grid, never occupied
	}
	list, err := h.Bookings.ListForRoomOn(ctx, roomID, date)
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		if schedule.MatchDay(b.DayOfWeek, dayIdx) && schedule.MatchSlot(b.TimeSlot, slot) {
			return b, nil
		}
	}
	return nil, nil
}

// toOccupant adapts a stored booking to the schedule package's occupant
// shape.
func toOccupant(b *repository.Booking) schedule.Occupant {
	return schedule.Occupant{
		ID:          b.ID,
		ClassName:   b.ClassName,
		CourseName:  b.CourseName,
		TeacherName: b.TeacherName,
		DayOfWeek:   b.DayOfWeek,
		TimeSlot:    b.TimeSlot,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
	}
}
