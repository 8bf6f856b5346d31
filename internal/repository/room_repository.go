package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel comparisons
	"time"
)

// Room status codes as stored in room_statuses and rooms.status_code.
const (
	StatusAvailable   = "Available"
	StatusInUse       = "InUse"
	StatusReserved    = "Reserved"
	StatusMaintenance = "Maintenance"
	StatusUnavailable = "Unavailable"
)

// Room represents one bookable room of the education center.
type Room struct {
	ID         uint64    `json:"id"`         // rooms.id, primary key
	RoomCode   string    `json:"roomCode"`   // human readable room code (e.g. "A-203")
	Capacity   int       `json:"capacity"`   // seat capacity
	RoomTypeID uint64    `json:"roomTypeId"` // references room_types.id
	StatusCode string    `json:"statusCode"` // current status, see the Status* constants
	IsActive   bool      `json:"isActive"`   // soft-delete flag
	CreatedAt  time.Time `json:"createdAt"`  // creation timestamp
	UpdatedAt  time.Time `json:"updatedAt"`  // last update timestamp
}

// Bookable reports whether the room may receive bookings. Rooms under
// maintenance or marked unavailable are excluded; InUse and Reserved rooms
// stay bookable because those states describe the current moment, not the
// whole week.
func (r *Room) Bookable() bool {
	return r.StatusCode != StatusMaintenance && r.StatusCode != StatusUnavailable
}

// RoomRepo provides read access to rooms. It embeds a database handle to
// perform queries.
type RoomRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// List returns all rooms ordered by room code. When activeOnly is non-nil
// the result is filtered on the is_active flag.
func (r *RoomRepo) List(ctx context.Context, activeOnly *bool) ([]*Room, error) {
	q := `SELECT id, room_code, capacity, room_type_id, status_code, is_active, created_at, updated_at
	      FROM rooms`
	var args []any
	if activeOnly != nil {
		q += ` WHERE is_active = ?`
		args = append(args, *activeOnly)
	}
	q += ` ORDER BY room_code`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Room
	for rows.Next() {
		rm := new(Room)
		if err := rows.Scan(&rm.ID, &rm.RoomCode, &rm.Capacity, &rm.RoomTypeID, &rm.StatusCode, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a single room. It returns ErrRoomNotFound when no row
// matches.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*Room, error) {
	const q = `SELECT id, room_code, capacity, room_type_id, status_code, is_active, created_at, updated_at
	           FROM rooms WHERE id = ?`
	var rm Room
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&rm.ID, &rm.RoomCode, &rm.Capacity, &rm.RoomTypeID, &rm.StatusCode, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}
