package schedule

import (
	"testing"
	"time"
)

func TestAssembleSingleOccupant(t *testing.T) {
	week := Window(time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local), 0)
	occ := Occupant{ID: 7, ClassName: "A1", DayOfWeek: "Monday", TimeSlot: "9:00"}
	grid := Assemble([]uint64{1}, map[uint64][]Occupant{1: {occ}}, week)

	got, ok := grid[CellKey{RoomID: 1, DayIndex: 0, SlotNumber: 1}]
	if !ok {
		t.Fatal("expected occupant at (room 1, Monday, slot 1)")
	}
	if got.ClassName != "A1" {
		t.Errorf("ClassName = %q, want %q", got.ClassName, "A1")
	}
	if len(grid) != 1 {
		t.Errorf("grid has %d cells, want exactly 1", len(grid))
	}
}

func TestAssembleFirstOccupantWins(t *testing.T) {
	week := Window(time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local), 0)
	first := Occupant{ID: 1, ClassName: "first", DayOfWeek: "Tuesday", TimeSlot: "Slot 3"}
	second := Occupant{ID: 2, ClassName: "second", DayOfWeek: "Tuesday", TimeSlot: "15:00"}
	grid := Assemble([]uint64{9}, map[uint64][]Occupant{9: {first, second}}, week)

	got, ok := grid[CellKey{RoomID: 9, DayIndex: 1, SlotNumber: 3}]
	if !ok {
		t.Fatal("expected an occupant at (room 9, Tuesday, slot 3)")
	}
	if got.ID != 1 {
		t.Errorf("winning occupant ID = %d, want the first-listed occupant (1)", got.ID)
	}

	// Determinism: repeated assembly picks the same winner.
	for i := 0; i < 20; i++ {
		again := Assemble([]uint64{9}, map[uint64][]Occupant{9: {first, second}}, week)
		if again[CellKey{RoomID: 9, DayIndex: 1, SlotNumber: 3}].ID != 1 {
			t.Fatalf("iteration %d: winner changed between runs", i)
		}
	}
}

func TestAssembleRespectsDateRange(t *testing.T) {
	week := Window(time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local), 0) // week of Mar 3
	ended := Occupant{
		ID: 3, ClassName: "old", DayOfWeek: "Monday", TimeSlot: "1",
		StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.Local),
	}
	active := Occupant{
		ID: 4, ClassName: "current", DayOfWeek: "Monday", TimeSlot: "1",
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local),
	}
	grid := Assemble([]uint64{2}, map[uint64][]Occupant{2: {ended, active}}, week)

	got, ok := grid[CellKey{RoomID: 2, DayIndex: 0, SlotNumber: 1}]
	if !ok {
		t.Fatal("expected the active occupant to land in the cell")
	}
	if got.ID != 4 {
		t.Errorf("occupant ID = %d, want 4 (the ended recurrence must be skipped)", got.ID)
	}
}

func TestAssembleUnmatchedLabelLeavesCellEmpty(t *testing.T) {
	week := Window(time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local), 0)
	occ := Occupant{ID: 5, DayOfWeek: "Monday", TimeSlot: "half past nowhere"}
	grid := Assemble([]uint64{1}, map[uint64][]Occupant{1: {occ}}, week)
	if len(grid) != 0 {
		t.Errorf("grid has %d cells, want 0 for an unmatchable label", len(grid))
	}
}

func TestAssembleEndToEnd(t *testing.T) {
	// One available room, occupant {Monday, "9:00", A1}: the booking must
	// land at (R1, dayIndex 0, slot 1) via the exact start-label rule.
	week := Window(time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local), 0)
	occ := Occupant{ID: 11, ClassName: "A1", DayOfWeek: "Monday", TimeSlot: "9:00"}
	grid := Assemble([]uint64{1}, map[uint64][]Occupant{1: {occ}}, week)
	got, ok := grid[CellKey{RoomID: 1, DayIndex: 0, SlotNumber: 1}]
	if !ok || got.ID != 11 {
		t.Fatalf("grid[(R1,0,1)] = %+v (ok=%v), want occupant 11", got, ok)
	}
}
