package handler

import (
	"context"
	"time"

	"github.com/educenter/room-scheduler/internal/repository"
)

// The handlers depend on small store interfaces rather than concrete
// repositories so the MySQL layer and the offline demo provider are
// interchangeable: production wires *repository.RoomRepo and friends,
// demo mode and tests wire the in-memory provider instead.

// RoomStore reads rooms.
type RoomStore interface {
	List(ctx context.Context, activeOnly *bool) ([]*repository.Room, error)
	GetByID(ctx context.Context, id uint64) (*repository.Room, error)
}

// CatalogStore reads the room type and status catalogs.
type CatalogStore interface {
	RoomTypes(ctx context.Context) ([]repository.RoomType, error)
	RoomStatuses(ctx context.Context) ([]repository.RoomStatus, error)
}

// BookingStore reads and mutates bookings. Create must check cell
// occupancy and insert atomically, returning repository.ErrSlotTaken when
// the cell is already held; the MySQL repository does this in one
// transaction, the demo provider under its dataset mutex.
type BookingStore interface {
	GetByID(ctx context.Context, id uint64) (*repository.Booking, error)
	ListForRoomsInRange(ctx context.Context, roomIDs []uint64, from, to time.Time) (map[uint64][]*repository.Booking, error)
	ListForRoomOn(ctx context.Context, roomID uint64, date time.Time) ([]*repository.Booking, error)
	Create(ctx context.Context, b *repository.Booking) error
	Delete(ctx context.Context, id uint64) error
}

// EventPublisher publishes booking lifecycle events. Publishing failures
// must never fail the originating request; implementations log and return
// the error so handlers can ignore it.
type EventPublisher interface {
	BookingCreated(ctx context.Context, b *repository.Booking, roomCode string) error
	BookingCancelled(ctx context.Context, b *repository.Booking) error
}

// RoomHandler bundles the stores behind the room, schedule and booking
// endpoints. Events may be nil when no broker is configured.
type RoomHandler struct {
	Rooms    RoomStore
	Catalogs CatalogStore
	Bookings BookingStore
	Events   EventPublisher
}

// NewRoomHandler constructs a RoomHandler and panics on nil stores; the
// Events publisher is optional.
func NewRoomHandler(rooms RoomStore, catalogs CatalogStore, bookings BookingStore, events EventPublisher) *RoomHandler {
	if rooms == nil || catalogs == nil || bookings == nil {
		panic("nil store passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms, Catalogs: catalogs, Bookings: bookings, Events: events}
}
