// Package repository defines sentinel errors shared across repositories.
// These values let handlers distinguish failure scenarios without parsing
// error text: a missing room becomes a 404 while a slot conflict becomes a
// 409, and everything else stays a generic 500.
package repository

import "errors"

// ErrRoomNotFound is returned when a room lookup matches no row.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking lookup or delete matches
// no row. Handlers translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSlotTaken is returned by booking creation when the target grid cell
// already has an occupant. Handlers translate this into an HTTP 409.
var ErrSlotTaken = errors.New("slot already booked")
