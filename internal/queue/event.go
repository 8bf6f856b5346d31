// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a slot booking succeeds. It carries
// enough information for downstream consumers to log, notify, or feed
// analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	RoomID      uint64 `json:"room_id"`
	RoomCode    string `json:"room_code"`
	ClassID     uint64 `json:"class_id"`
	ClassName   string `json:"class_name"`
	CourseName  string `json:"course_name"`
	TeacherName string `json:"teacher_name"`
	DayOfWeek   string `json:"day_of_week"`
	SlotNumber  int    `json:"slot_number"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

// BookingCancelledEvent is published when a booking is cancelled.
type BookingCancelledEvent struct {
	BookingID   uint64 `json:"booking_id"`
	RoomID      uint64 `json:"room_id"`
	ClassName   string `json:"class_name"`
	DayOfWeek   string `json:"day_of_week"`
	SlotNumber  int    `json:"slot_number"`
	CancelledAt string `json:"cancelled_at"`
}
