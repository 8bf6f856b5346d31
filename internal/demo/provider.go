// Package demo is the offline data provider: in-memory implementations of
// the room, catalog and booking stores backed by a fixed sample dataset.
// It exists so the server can run without MySQL (DEMO_MODE=true) and so
// tests can exercise handlers against a predictable dataset. The sample
// bookings deliberately mix English and Vietnamese day names and several
// slot label forms, mirroring what legacy imports actually look like.
package demo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/educenter/room-scheduler/internal/repository"
	"github.com/educenter/room-scheduler/internal/schedule"
)

// dataset holds the shared demo state. Reads copy data out; mutations run
// under the mutex so concurrent handlers stay safe.
type dataset struct {
	mu       sync.Mutex
	nextID   uint64
	rooms    []*repository.Room
	types    []repository.RoomType
	statuses []repository.RoomStatus
	bookings []*repository.Booking
}

// Provider bundles the three store views over one shared dataset.
type Provider struct {
	Rooms    *RoomProvider
	Catalogs *CatalogProvider
	Bookings *BookingProvider
}

// RoomProvider implements the handler RoomStore over the demo dataset.
type RoomProvider struct{ d *dataset }

// CatalogProvider implements the handler CatalogStore.
type CatalogProvider struct{ d *dataset }

// BookingProvider implements the handler BookingStore.
type BookingProvider struct{ d *dataset }

// New builds a Provider populated with the sample dataset.
func New() *Provider {
	now := time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC)
	sem := func(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }
	d := &dataset{
		nextID: 100,
		rooms: []*repository.Room{
			{ID: 1, RoomCode: "A-101", Capacity: 30, RoomTypeID: 1, StatusCode: repository.StatusAvailable, IsActive: true, CreatedAt: now, UpdatedAt: now},
			{ID: 2, RoomCode: "A-102", Capacity: 25, RoomTypeID: 1, StatusCode: repository.StatusInUse, IsActive: true, CreatedAt: now, UpdatedAt: now},
			{ID: 3, RoomCode: "B-201", Capacity: 40, RoomTypeID: 2, StatusCode: repository.StatusMaintenance, IsActive: true, CreatedAt: now, UpdatedAt: now},
			{ID: 4, RoomCode: "B-202", Capacity: 18, RoomTypeID: 3, StatusCode: repository.StatusAvailable, IsActive: false, CreatedAt: now, UpdatedAt: now},
		},
		types: []repository.RoomType{
			{ID: 1, Name: "Classroom"},
			{ID: 2, Name: "Lecture hall"},
			{ID: 3, Name: "Computer lab"},
		},
		statuses: []repository.RoomStatus{
			{Code: repository.StatusAvailable, Label: "Available"},
			{Code: repository.StatusInUse, Label: "In use"},
			{Code: repository.StatusMaintenance, Label: "Under maintenance"},
			{Code: repository.StatusReserved, Label: "Reserved"},
			{Code: repository.StatusUnavailable, Label: "Unavailable"},
		},
		bookings: []*repository.Booking{
			{
				ID: 10, RoomID: 1, ClassID: 501, CourseID: 71, TeacherID: 9,
				ClassName: "IELTS-A1", CourseName: "IELTS Foundation", TeacherName: "Ms. Lan",
				DayOfWeek: "Monday", TimeSlot: "9:00", SlotNumber: 1,
				StartDate: sem(2025, 1, 6), EndDate: sem(2025, 6, 28), CreatedAt: now,
			},
			{
				ID: 11, RoomID: 1, ClassID: 502, CourseID: 72, TeacherID: 12,
				ClassName: "TOEIC-B2", CourseName: "TOEIC Intensive", TeacherName: "Mr. Minh",
				DayOfWeek: "Thứ Ba", TimeSlot: "Slot 2", SlotNumber: 2,
				StartDate: sem(2025, 1, 6), EndDate: sem(2025, 6, 28), CreatedAt: now,
			},
			{
				ID: 12, RoomID: 2, ClassID: 503, CourseID: 73, TeacherID: 15,
				ClassName: "KIDS-C3", CourseName: "English for Kids", TeacherName: "Ms. Hoa",
				DayOfWeek: "Thứ Bảy", TimeSlot: "3", SlotNumber: 3,
				StartDate: sem(2025, 1, 6), EndDate: sem(2025, 6, 28), CreatedAt: now,
			},
		},
	}
	return &Provider{
		Rooms:    &RoomProvider{d: d},
		Catalogs: &CatalogProvider{d: d},
		Bookings: &BookingProvider{d: d},
	}
}

// List returns the demo rooms, optionally filtered on the active flag.
func (p *RoomProvider) List(_ context.Context, activeOnly *bool) ([]*repository.Room, error) {
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	out := make([]*repository.Room, 0, len(p.d.rooms))
	for _, r := range p.d.rooms {
		if activeOnly != nil && r.IsActive != *activeOnly {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

// GetByID returns a demo room or repository.ErrRoomNotFound.
func (p *RoomProvider) GetByID(_ context.Context, id uint64) (*repository.Room, error) {
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	for _, r := range p.d.rooms {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, repository.ErrRoomNotFound
}

// RoomTypes returns the demo type catalog.
func (p *CatalogProvider) RoomTypes(_ context.Context) ([]repository.RoomType, error) {
	return append([]repository.RoomType(nil), p.d.types...), nil
}

// RoomStatuses returns the demo status catalog.
func (p *CatalogProvider) RoomStatuses(_ context.Context) ([]repository.RoomStatus, error) {
	return append([]repository.RoomStatus(nil), p.d.statuses...), nil
}

// GetByID returns a demo booking or repository.ErrBookingNotFound.
func (p *BookingProvider) GetByID(_ context.Context, id uint64) (*repository.Booking, error) {
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	for _, b := range p.d.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

// ListForRoomsInRange groups bookings per room for recurrences overlapping
// [from, to], preserving insertion order within each room.
func (p *BookingProvider) ListForRoomsInRange(_ context.Context, roomIDs []uint64, from, to time.Time) (map[uint64][]*repository.Booking, error) {
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	wanted := make(map[uint64]bool, len(roomIDs))
	for _, id := range roomIDs {
		wanted[id] = true
	}
	out := make(map[uint64][]*repository.Booking)
	for _, b := range p.d.bookings {
		if !wanted[b.RoomID] {
			continue
		}
		if b.StartDate.After(to) || b.EndDate.Before(from) {
			continue
		}
		cp := *b
		out[b.RoomID] = append(out[b.RoomID], &cp)
	}
	return out, nil
}

// ListForRoomOn returns one room's bookings whose recurrence covers date.
func (p *BookingProvider) ListForRoomOn(_ context.Context, roomID uint64, date time.Time) ([]*repository.Booking, error) {
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	var out []*repository.Booking
	for _, b := range p.d.bookings {
		if b.RoomID != roomID {
			continue
		}
		if b.StartDate.After(date) || b.EndDate.Before(date) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

// Create appends a booking, assigning the next free identifier. The cell
// occupancy check runs under the dataset mutex so concurrent creates for
// the same free cell resolve to one stored booking and one ErrSlotTaken,
// mirroring the transactional check of the MySQL repository.
func (p *BookingProvider) Create(_ context.Context, b *repository.Booking) error {
	slot, ok := schedule.SlotByNumber(b.SlotNumber)
	if !ok {
		return fmt.Errorf("slot number %d is not in the catalog", b.SlotNumber)
	}
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	dayIdx := schedule.DayIndex(schedule.NormalizeDayName(b.DayOfWeek))
	for _, ex := range p.d.bookings {
		if ex.RoomID != b.RoomID {
			continue
		}
		if ex.StartDate.After(b.StartDate) || ex.EndDate.Before(b.StartDate) {
			continue
		}
		if schedule.MatchDay(ex.DayOfWeek, dayIdx) && schedule.MatchSlot(ex.TimeSlot, slot) {
			return repository.ErrSlotTaken
		}
	}
	p.d.nextID++
	b.ID = p.d.nextID
	b.CreatedAt = time.Now().UTC()
	cp := *b
	p.d.bookings = append(p.d.bookings, &cp)
	return nil
}

// Delete removes a booking by id, returning repository.ErrBookingNotFound
// when it does not exist.
func (p *BookingProvider) Delete(_ context.Context, id uint64) error {
	p.d.mu.Lock()
	defer p.d.mu.Unlock()
	for i, b := range p.d.bookings {
		if b.ID == id {
			p.d.bookings = append(p.d.bookings[:i], p.d.bookings[i+1:]...)
			return nil
		}
	}
	return repository.ErrBookingNotFound
}
