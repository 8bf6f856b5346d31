// Package schedule implements the room scheduling core: the fixed daily
// time-slot catalog, week window arithmetic, the day/slot label matcher and
// the weekly grid assembler. Everything in this package is pure computation;
// persistence and transport live in the repository and handler layers.
package schedule

// TimeSlot is one entry of the fixed catalog of daily class windows.
// Slot numbers are unique and increase monotonically with StartLabel.
//
// Fields:
//  Number      – 1-based slot number, stable across the platform.
//  StartLabel  – start of the window as an "HH:MM" 24-hour string.
//  EndLabel    – end of the window as an "HH:MM" 24-hour string.
//  DisplayName – optional human friendly label for UIs.
type TimeSlot struct {
	Number      int    `json:"slotNumber"`
	StartLabel  string `json:"startLabel"`
	EndLabel    string `json:"endLabel"`
	DisplayName string `json:"displayName,omitempty"`
}

// Slots is the fixed slot catalog. Five 90-minute windows spanning
// 09:00–19:30. The catalog is immutable; callers must not modify it.
// Start labels are stored exactly as the platform renders them (slot 1
// drops the leading zero) because the matcher compares them literally.
var Slots = []TimeSlot{
	{Number: 1, StartLabel: "9:00", EndLabel: "10:30", DisplayName: "Slot 1 (9:00 - 10:30)"},
	{Number: 2, StartLabel: "13:30", EndLabel: "15:00", DisplayName: "Slot 2 (13:30 - 15:00)"},
	{Number: 3, StartLabel: "15:00", EndLabel: "16:30", DisplayName: "Slot 3 (15:00 - 16:30)"},
	{Number: 4, StartLabel: "16:30", EndLabel: "18:00", DisplayName: "Slot 4 (16:30 - 18:00)"},
	{Number: 5, StartLabel: "18:00", EndLabel: "19:30", DisplayName: "Slot 5 (18:00 - 19:30)"},
}

// SlotByNumber returns the catalog entry for the given slot number. The
// second return value reports whether the number exists in the catalog.
func SlotByNumber(n int) (TimeSlot, bool) {
	for _, s := range Slots {
		if s.Number == n {
			return s, true
		}
	}
	return TimeSlot{}, false
}
