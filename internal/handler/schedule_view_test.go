package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func getCtx(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetWeekSchedule(t *testing.T) {
	h := newTestHandler()
	e := echo.New()

	c, rec := getCtx(e, "/v1/rooms/schedule?weekStart=2025-03-03")
	if err := h.GetWeekSchedule(c); err != nil {
		t.Fatalf("GetWeekSchedule returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s), want 200", rec.Code, rec.Body.String())
	}

	var resp struct {
		WeekStart string `json:"weekStart"`
		WeekEnd   string `json:"weekEnd"`
		Items     []struct {
			Room struct {
				ID       uint64 `json:"id"`
				RoomCode string `json:"roomCode"`
			} `json:"room"`
			Schedule map[string][]struct {
				SlotNumber int    `json:"slotNumber"`
				IsBooked   bool   `json:"isBooked"`
				ClassName  string `json:"className"`
			} `json:"schedule"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp.WeekStart != "2025-03-03" || resp.WeekEnd != "2025-03-08" {
		t.Errorf("window = %s..%s, want 2025-03-03..2025-03-08", resp.WeekStart, resp.WeekEnd)
	}

	// Active rooms only: the demo dataset has three active rooms.
	if len(resp.Items) != 3 {
		t.Fatalf("len(items) = %d, want 3 active rooms", len(resp.Items))
	}

	byCode := map[string]map[string][]struct {
		SlotNumber int    `json:"slotNumber"`
		IsBooked   bool   `json:"isBooked"`
		ClassName  string `json:"className"`
	}{}
	for _, it := range resp.Items {
		byCode[it.Room.RoomCode] = it.Schedule
		// Every room carries six day columns of five slots each.
		if len(it.Schedule) != 6 {
			t.Errorf("room %s has %d day columns, want 6", it.Room.RoomCode, len(it.Schedule))
		}
		for day, slots := range it.Schedule {
			if len(slots) != 5 {
				t.Errorf("room %s %s has %d slots, want 5", it.Room.RoomCode, day, len(slots))
			}
		}
	}

	// IELTS-A1 recurs Monday at "9:00": slot 1 of A-101's Monday column.
	monday := byCode["A-101"]["Monday"]
	if !monday[0].IsBooked || monday[0].ClassName != "IELTS-A1" {
		t.Errorf("A-101 Monday slot 1 = %+v, want IELTS-A1 booked", monday[0])
	}
	// TOEIC-B2 is stored as "Thứ Ba" / "Slot 2" and must surface on
	// Tuesday slot 2 through the matcher.
	tuesday := byCode["A-101"]["Tuesday"]
	if !tuesday[1].IsBooked || tuesday[1].ClassName != "TOEIC-B2" {
		t.Errorf("A-101 Tuesday slot 2 = %+v, want TOEIC-B2 booked", tuesday[1])
	}
	// The same cell on Monday stays free.
	if monday[1].IsBooked {
		t.Errorf("A-101 Monday slot 2 is booked, want free")
	}
}

func TestGetWeekScheduleNormalizesToMonday(t *testing.T) {
	h := newTestHandler()
	e := echo.New()

	// Passing a Thursday anchors the same week.
	c, rec := getCtx(e, "/v1/rooms/schedule?weekStart=2025-03-06")
	if err := h.GetWeekSchedule(c); err != nil {
		t.Fatalf("GetWeekSchedule returned error: %v", err)
	}
	var resp struct {
		WeekStart string `json:"weekStart"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp.WeekStart != "2025-03-03" {
		t.Errorf("weekStart = %s, want normalized Monday 2025-03-03", resp.WeekStart)
	}
}

func TestGetWeekScheduleRequiresWeekStart(t *testing.T) {
	h := newTestHandler()
	e := echo.New()

	c, rec := getCtx(e, "/v1/rooms/schedule")
	if err := h.GetWeekSchedule(c); err != nil {
		t.Fatalf("GetWeekSchedule returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without weekStart", rec.Code)
	}
}

func TestGetSlotInfo(t *testing.T) {
	h := newTestHandler()
	e := echo.New()

	c, rec := getCtx(e, "/v1/rooms/1/slot-info?date=2025-03-03&slotNumber=1")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.GetSlotInfo(c); err != nil {
		t.Fatalf("GetSlotInfo returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s), want 200", rec.Code, rec.Body.String())
	}
	var resp struct {
		IsBooked bool `json:"isBooked"`
		Bookable bool `json:"bookable"`
		Booking  *struct {
			ClassName string `json:"className"`
		} `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if !resp.IsBooked || resp.Booking == nil || resp.Booking.ClassName != "IELTS-A1" {
		t.Errorf("slot info = %+v, want IELTS-A1 occupying Monday slot 1", resp)
	}
	if !resp.Bookable {
		t.Errorf("room 1 should be bookable")
	}
}

func TestGetSlotInfoFreeCell(t *testing.T) {
	h := newTestHandler()
	e := echo.New()

	c, rec := getCtx(e, "/v1/rooms/1/slot-info?date=2025-03-03&slotNumber=5")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.GetSlotInfo(c); err != nil {
		t.Fatalf("GetSlotInfo returned error: %v", err)
	}
	var resp struct {
		IsBooked bool            `json:"isBooked"`
		Booking  json.RawMessage `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp.IsBooked || resp.Booking != nil {
		t.Errorf("slot info = %+v, want a free cell", resp)
	}
}

func TestGetSlotInfoUnknownRoom(t *testing.T) {
	h := newTestHandler()
	e := echo.New()

	c, rec := getCtx(e, "/v1/rooms/99/slot-info?date=2025-03-03&slotNumber=1")
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := h.GetSlotInfo(c); err != nil {
		t.Fatalf("GetSlotInfo returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListRooms(t *testing.T) {
	h := newTestHandler()
	e := echo.New()

	c, rec := getCtx(e, "/v1/rooms?active=true")
	if err := h.ListRooms(c); err != nil {
		t.Fatalf("ListRooms returned error: %v", err)
	}
	var resp struct {
		Items []struct {
			IsActive bool `json:"isActive"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Errorf("len(items) = %d, want 3 active rooms", len(resp.Items))
	}
	for i, r := range resp.Items {
		if !r.IsActive {
			t.Errorf("items[%d] is inactive despite ?active=true", i)
		}
	}
}

func TestListRoomStatuses(t *testing.T) {
	h := newTestHandler()
	e := echo.New()

	c, rec := getCtx(e, "/v1/rooms/statuses")
	if err := h.ListRoomStatuses(c); err != nil {
		t.Fatalf("ListRoomStatuses returned error: %v", err)
	}
	var resp struct {
		Items []struct {
			Code string `json:"code"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if len(resp.Items) != 5 {
		t.Errorf("len(items) = %d, want the 5 status codes", len(resp.Items))
	}
}
