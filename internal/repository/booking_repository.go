package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/educenter/room-scheduler/internal/schedule"
)

// Booking is one scheduled class meeting occupying a room at a weekly
// recurring day and slot. DayOfWeek and TimeSlot carry the labels exactly
// as the upstream academic system reported them — legacy imports mix
// English and Vietnamese day names and report slots by number, literal
// form or clock time — so the serving path resolves them through the
// schedule matcher instead of trusting the raw strings.
type Booking struct {
	ID          uint64    `json:"id"`          // bookings.id
	RoomID      uint64    `json:"roomId"`      // bookings.room_id
	ClassID     uint64    `json:"classId"`     // upstream class identifier
	CourseID    uint64    `json:"courseId"`    // upstream course identifier
	TeacherID   uint64    `json:"teacherId"`   // upstream teacher identifier
	ClassName   string    `json:"className"`   // display name of the class
	CourseName  string    `json:"courseName"`  // display name of the course
	TeacherName string    `json:"teacherName"` // display name of the teacher
	DayOfWeek   string    `json:"dayOfWeek"`   // free-form weekday label
	TimeSlot    string    `json:"timeSlot"`    // free-form slot label
	SlotNumber  int       `json:"slotNumber"`  // catalog slot number when known
	StartDate   time.Time `json:"startDate"`   // first date the recurrence covers
	EndDate     time.Time `json:"endDate"`     // last date the recurrence covers
	CreatedAt   time.Time `json:"createdAt"`   // creation timestamp
}

// BookingRepo provides persistence for bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingColumns = `id, room_id, class_id, course_id, teacher_id, class_name, course_name,
	teacher_name, day_of_week, time_slot, slot_number, start_date, end_date, created_at`

// scanBooking reads one row into a Booking in bookingColumns order.
func scanBooking(row interface{ Scan(...any) error }) (*Booking, error) {
	b := new(Booking)
	err := row.Scan(&b.ID, &b.RoomID, &b.ClassID, &b.CourseID, &b.TeacherID,
		&b.ClassName, &b.CourseName, &b.TeacherName,
		&b.DayOfWeek, &b.TimeSlot, &b.SlotNumber,
		&b.StartDate, &b.EndDate, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetByID retrieves a booking, returning ErrBookingNotFound when missing.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListForRoomsInRange returns, per room, all bookings whose recurrence
// window overlaps [from, to]. The result preserves insertion order per
// room (ordered by id) so grid assembly stays deterministic.
func (r *BookingRepo) ListForRoomsInRange(ctx context.Context, roomIDs []uint64, from, to time.Time) (map[uint64][]*Booking, error) {
	out := make(map[uint64][]*Booking, len(roomIDs))
	if len(roomIDs) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(roomIDs)), ",")
	q := `SELECT ` + bookingColumns + ` FROM bookings
	      WHERE room_id IN (` + placeholders + `) AND start_date <= ? AND end_date >= ?
	      ORDER BY room_id, id`
	args := make([]any, 0, len(roomIDs)+2)
	for _, id := range roomIDs {
		args = append(args, id)
	}
	args = append(args, to, from)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out[b.RoomID] = append(out[b.RoomID], b)
	}
	return out, rows.Err()
}

// ListForRoomOn returns all bookings of one room whose recurrence covers
// the given date, ordered by id. The caller decides which of them actually
// occupy a cell by running the schedule matcher.
func (r *BookingRepo) ListForRoomOn(ctx context.Context, roomID uint64, date time.Time) ([]*Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings
	      WHERE room_id = ? AND start_date <= ? AND end_date >= ?
	      ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, roomID, date, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create inserts a new booking after verifying, inside one transaction,
// that the target cell is still free. The locking scan over the room's
// bookings covering the date makes a concurrent insert for the same room
// wait, so two requests racing for one free cell resolve to one stored
// row and one ErrSlotTaken. The unique index uq_bookings_cell backstops
// the check; its duplicate-key error maps to ErrSlotTaken too. On success
// the stored row is read back so generated fields (id, created_at) are
// populated on the passed struct.
func (r *BookingRepo) Create(ctx context.Context, b *Booking) error {
	slot, ok := schedule.SlotByNumber(b.SlotNumber)
	if !ok {
		return fmt.Errorf("slot number %d is not in the catalog", b.SlotNumber)
	}
	dayIdx := schedule.DayIndex(schedule.NormalizeDayName(b.DayOfWeek))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	lockQ := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE room_id = ? AND start_date <= ? AND end_date >= ?
	          ORDER BY id FOR UPDATE`
	rows, err := tx.QueryContext(ctx, lockQ, b.RoomID, b.StartDate, b.StartDate)
	if err != nil {
		return err
	}
	var existing []*Booking
	for rows.Next() {
		ex, err := scanBooking(rows)
		if err != nil {
			rows.Close()
			return err
		}
		existing = append(existing, ex)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()
	for _, ex := range existing {
		if schedule.MatchDay(ex.DayOfWeek, dayIdx) && schedule.MatchSlot(ex.TimeSlot, slot) {
			return ErrSlotTaken
		}
	}

	const ins = `INSERT INTO bookings
	             (room_id, class_id, course_id, teacher_id, class_name, course_name, teacher_name,
	              day_of_week, time_slot, slot_number, start_date, end_date)
	             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, ins,
		b.RoomID, b.ClassID, b.CourseID, b.TeacherID,
		b.ClassName, b.CourseName, b.TeacherName,
		b.DayOfWeek, b.TimeSlot, b.SlotNumber, b.StartDate, b.EndDate)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return ErrSlotTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	sel := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	stored, err := scanBooking(tx.QueryRowContext(ctx, sel, uint64(id)))
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	*b = *stored
	return nil
}

// Delete removes a booking by id. Returns ErrBookingNotFound when no row
// was deleted.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM bookings WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
