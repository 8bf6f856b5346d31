// Package client is a typed client for the room scheduling API. Front-end
// gateways and batch tooling use it instead of issuing raw HTTP calls.
//
// The HTTP transport is injected so tests can substitute a fake; when nil,
// a default client with a 10 second timeout is used. All calls are single
// attempt: failures are logged and returned to the caller, never retried,
// and a failed mutation leaves no client-side state to roll back — callers
// refetch the schedule after a successful mutation instead of applying
// optimistic updates.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client calls the room scheduling API at a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a Client. httpClient may be nil, in which case
// DefaultHTTPClient is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = DefaultHTTPClient()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// DefaultHTTPClient returns the transport used when none is injected.
func DefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// APIError is a server-reported failure (4xx/5xx) with the message the
// server returned in its error body, passed on verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// BookSlotRequest is the body of POST /v1/rooms/book-slot. Date uses the
// YYYY-MM-DD wire format.
type BookSlotRequest struct {
	ClassID     uint64 `json:"classId"`
	CourseID    uint64 `json:"courseId"`
	TeacherID   uint64 `json:"teacherId"`
	RoomID      uint64 `json:"roomId"`
	SlotNumber  int    `json:"slotNumber"`
	Date        string `json:"date"`
	ClassName   string `json:"className,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
	TeacherName string `json:"teacherName,omitempty"`
}

// Booking is a created booking as returned by the server.
type Booking struct {
	ID          uint64 `json:"id"`
	RoomID      uint64 `json:"roomId"`
	ClassName   string `json:"className"`
	CourseName  string `json:"courseName"`
	TeacherName string `json:"teacherName"`
	DayOfWeek   string `json:"dayOfWeek"`
	SlotNumber  int    `json:"slotNumber"`
}

// Room mirrors the server's room shape.
type Room struct {
	ID         uint64 `json:"id"`
	RoomCode   string `json:"roomCode"`
	Capacity   int    `json:"capacity"`
	RoomTypeID uint64 `json:"roomTypeId"`
	StatusCode string `json:"statusCode"`
	IsActive   bool   `json:"isActive"`
}

// SlotEntry is one cell of a room's daily schedule.
type SlotEntry struct {
	SlotNumber  int    `json:"slotNumber"`
	StartLabel  string `json:"startLabel"`
	EndLabel    string `json:"endLabel"`
	IsBooked    bool   `json:"isBooked"`
	BookingID   uint64 `json:"bookingId"`
	ClassName   string `json:"className"`
	CourseName  string `json:"courseName"`
	TeacherName string `json:"teacherName"`
}

// RoomSchedule is one room with its per-day slot entries keyed by English
// weekday name.
type RoomSchedule struct {
	Room     Room                   `json:"room"`
	Schedule map[string][]SlotEntry `json:"schedule"`
}

// WeekSchedule is the response of GET /v1/rooms/schedule.
type WeekSchedule struct {
	WeekStart string         `json:"weekStart"`
	WeekEnd   string         `json:"weekEnd"`
	Items     []RoomSchedule `json:"items"`
}

// Rooms fetches the room list. Pass nil for no active filter.
func (c *Client) Rooms(ctx context.Context, activeOnly *bool) ([]Room, error) {
	url := c.baseURL + "/v1/rooms"
	if activeOnly != nil {
		url += fmt.Sprintf("?active=%t", *activeOnly)
	}
	var out struct {
		Items []Room `json:"items"`
	}
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	for i, r := range out.Items {
		if r.ID == 0 {
			return nil, &DecodeError{Field: fmt.Sprintf("items[%d].id", i), Reason: "missing or zero"}
		}
	}
	return out.Items, nil
}

// WeekSchedule fetches the grid for the week containing weekStart.
func (c *Client) WeekSchedule(ctx context.Context, weekStart, weekEnd string) (*WeekSchedule, error) {
	url := fmt.Sprintf("%s/v1/rooms/schedule?weekStart=%s&weekEnd=%s", c.baseURL, weekStart, weekEnd)
	var out WeekSchedule
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	if out.WeekStart == "" {
		return nil, &DecodeError{Field: "weekStart", Reason: "missing"}
	}
	return &out, nil
}

// BookSlot issues the booking mutation. On success the caller is expected
// to refetch schedule data; there is no optimistic update to undo on
// failure.
func (c *Client) BookSlot(ctx context.Context, req BookSlotRequest) (*Booking, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/rooms/book-slot", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("client: book slot failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		err := apiErrorFrom(resp)
		log.Printf("client: book slot rejected: %v", err)
		return nil, err
	}
	var b Booking
	if err := decodeBody(resp.Body, &b); err != nil {
		return nil, err
	}
	if b.ID == 0 {
		return nil, &DecodeError{Field: "id", Reason: "missing or zero"}
	}
	return &b, nil
}

// CancelBooking cancels a booking by id. An empty id is an explicit no-op:
// no request is made and no error returned, so callers can pass through
// possibly-unset ids without guarding. Errors are logged and returned;
// user-facing messaging is the caller's job.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if strings.TrimSpace(bookingID) == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/v1/rooms/bookings/"+bookingID, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("client: cancel booking %s failed: %v", bookingID, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		err := apiErrorFrom(resp)
		log.Printf("client: cancel booking %s rejected: %v", bookingID, err)
		return err
	}
	return nil
}

// get performs a GET and decodes a JSON body into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("client: GET %s failed: %v", url, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := apiErrorFrom(resp)
		log.Printf("client: GET %s rejected: %v", url, err)
		return err
	}
	return decodeBody(resp.Body, out)
}

// apiErrorFrom extracts the server's error message, falling back to the
// HTTP status text when the body is not the usual {"error": ...} shape.
func apiErrorFrom(resp *http.Response) *APIError {
	msg := http.StatusText(resp.StatusCode)
	var body struct {
		Error string `json:"error"`
	}
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			msg = body.Error
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
