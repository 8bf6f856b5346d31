package schedule

import "time"

// Occupant is one scheduled class meeting as seen by the grid: a weekly
// recurring occupancy of a room identified by a day-of-week label and a
// free-form time-slot label. StartDate and EndDate bound the weeks the
// recurrence covers; zero values mean unbounded.
type Occupant struct {
	ID          uint64
	ClassName   string
	CourseName  string
	TeacherName string
	DayOfWeek   string // free-form weekday label, English or Vietnamese
	TimeSlot    string // free-form slot label, matched by MatchSlot
	StartDate   time.Time
	EndDate     time.Time
}

// CellKey addresses one cell of the weekly grid.
type CellKey struct {
	RoomID     uint64
	DayIndex   int // Monday=0 .. Saturday=5
	SlotNumber int
}

// Grid maps occupied cells to their occupant. Cells without an occupant
// are absent from the map. At most one occupant per cell: when several
// occupants would land in the same cell, the first one in its room's
// occupant list wins and the rest are dropped.
type Grid map[CellKey]Occupant

// Assemble builds the weekly grid for the given rooms and week window by
// running the day and slot matchers over every (room, day, slot)
// combination against that room's occupant list. Occupants whose date
// range does not cover the cell's calendar date are skipped. The result is
// a pure function of its inputs.
func Assemble(roomIDs []uint64, occupants map[uint64][]Occupant, week WeekWindow) Grid {
	grid := make(Grid)
	for _, roomID := range roomIDs {
		list := occupants[roomID]
		if len(list) == 0 {
			continue
		}
		for dayIdx := 0; dayIdx < GridDays && dayIdx < len(week.Days); dayIdx++ {
			date := week.Days[dayIdx].Date
			for _, slot := range Slots {
				key := CellKey{RoomID: roomID, DayIndex: dayIdx, SlotNumber: slot.Number}
				for _, occ := range list {
					if !occ.covers(date) {
						continue
					}
					if !MatchDay(occ.DayOfWeek, dayIdx) {
						continue
					}
					if !MatchSlot(occ.TimeSlot, slot) {
						continue
					}
					grid[key] = occ
					break // first match wins, cell is settled
				}
			}
		}
	}
	return grid
}

// covers reports whether the recurrence is active on the given date.
// Zero-valued bounds are open.
func (o Occupant) covers(date time.Time) bool {
	if !o.StartDate.IsZero() && date.Before(midnight(o.StartDate)) {
		return false
	}
	if !o.EndDate.IsZero() && date.After(midnight(o.EndDate)) {
		return false
	}
	return true
}
