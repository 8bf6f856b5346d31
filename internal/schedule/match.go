package schedule

import (
	"strconv"
	"strings"
)

// Upstream systems are inconsistent about how a booking names its slot:
// some report the clock time ("13:30"), some the literal form ("Slot 2"),
// some the bare number ("2"), and imported records sometimes embed either
// inside a longer label. The matcher therefore evaluates an ordered list of
// rules and the first rule that succeeds wins. The ordering is load-bearing:
// a label like "1" satisfies both the bare-number rule and, by containment,
// several others, so rule order decides which slot such an ambiguous label
// lands in and must stay fixed.

// SlotRule is one predicate of the ordered slot-matching cascade.
type SlotRule struct {
	Name  string // short identifier, useful in tests and logs
	Match func(label string, slot TimeSlot) bool
}

// SlotRules is the cascade, evaluated first to last.
var SlotRules = []SlotRule{
	{
		Name: "exact-start",
		Match: func(label string, slot TimeSlot) bool {
			return label == slot.StartLabel
		},
	},
	{
		Name: "slot-literal",
		Match: func(label string, slot TimeSlot) bool {
			return strings.EqualFold(label, "slot "+strconv.Itoa(slot.Number))
		},
	},
	{
		Name: "bare-number",
		Match: func(label string, slot TimeSlot) bool {
			return label == strconv.Itoa(slot.Number)
		},
	},
	{
		Name: "contains-start",
		Match: func(label string, slot TimeSlot) bool {
			return strings.Contains(label, slot.StartLabel)
		},
	},
	{
		Name: "contains-number",
		Match: func(label string, slot TimeSlot) bool {
			return strings.Contains(label, strconv.Itoa(slot.Number))
		},
	},
}

// MatchSlot reports whether a free-form slot label refers to the given
// catalog slot. Labels are trimmed before matching; an empty label never
// matches. Deterministic: same inputs always give the same answer.
func MatchSlot(label string, slot TimeSlot) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}
	for _, r := range SlotRules {
		if r.Match(label, slot) {
			return true
		}
	}
	return false
}

// vietnameseDays maps the Vietnamese weekday names used by legacy records
// to their English equivalents. Only the six grid days are mapped; the
// scheduling grid does not use Sunday.
var vietnameseDays = map[string]string{
	"Thứ Hai": "Monday",
	"Thứ Ba":  "Tuesday",
	"Thứ Tư":  "Wednesday",
	"Thứ Năm": "Thursday",
	"Thứ Sáu": "Friday",
	"Thứ Bảy": "Saturday",
}

// NormalizeDayName translates a Vietnamese weekday name to English and
// returns English names unchanged. Unknown names come back as given, so
// they simply fail the day match downstream.
func NormalizeDayName(name string) string {
	name = strings.TrimSpace(name)
	if en, ok := vietnameseDays[name]; ok {
		return en
	}
	return name
}

// MatchDay reports whether a booking's day-of-week label belongs in the
// grid column dayIndex (Monday=0 .. Saturday=5).
func MatchDay(dayName string, dayIndex int) bool {
	if dayIndex < 0 || dayIndex >= GridDays {
		return false
	}
	return NormalizeDayName(dayName) == gridDayNames[dayIndex]
}
