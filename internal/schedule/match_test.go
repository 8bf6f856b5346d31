package schedule

import "testing"

func TestSlotRuleCascadeOrder(t *testing.T) {
	want := []string{"exact-start", "slot-literal", "bare-number", "contains-start", "contains-number"}
	if len(SlotRules) != len(want) {
		t.Fatalf("cascade has %d rules, want %d", len(SlotRules), len(want))
	}
	for i, name := range want {
		if SlotRules[i].Name != name {
			t.Errorf("rule %d is %q, want %q", i, SlotRules[i].Name, name)
		}
	}
}

func TestMatchSlotRuleOrdering(t *testing.T) {
	slot2 := Slots[1] // {2, "13:30", "15:00"}
	cases := []struct {
		label string
		want  bool
	}{
		{"13:30", true},       // exact start label
		{"Slot 2", true},      // literal form even though start label differs
		{"slot 2", true},      // literal form is case-insensitive
		{"2", true},           // bare slot number
		{"13:30 - 15:00", true}, // start label contained in a longer label
		{"period 2 of day", true}, // number contained in a longer label
		{"15:00", false},      // end label is not matched by any rule
		{"Slot 3", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		if got := MatchSlot(tc.label, slot2); got != tc.want {
			t.Errorf("MatchSlot(%q, slot 2) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestMatchSlotLiteralFormBeatsNothing(t *testing.T) {
	// "Slot 2" must match via the literal rule: the exact-start rule fails
	// ("Slot 2" != "13:30") and the cascade falls through to the next rule.
	slot2, _ := SlotByNumber(2)
	if !MatchSlot("Slot 2", slot2) {
		t.Fatal(`"Slot 2" did not match slot {2, "13:30"}`)
	}
}

func TestMatchSlotDeterministic(t *testing.T) {
	slot1, _ := SlotByNumber(1)
	for i := 0; i < 100; i++ {
		if !MatchSlot("1", slot1) {
			t.Fatalf("iteration %d: MatchSlot became non-deterministic", i)
		}
	}
}

func TestMatchSlotAmbiguousBareNumber(t *testing.T) {
	// "1" could mean slot 1 or one o'clock; the bare-number rule settles it
	// as slot 1 and the same label must not also claim later slots whose
	// numbers it does not contain.
	slot1, _ := SlotByNumber(1)
	slot2, _ := SlotByNumber(2)
	if !MatchSlot("1", slot1) {
		t.Error(`"1" should match slot 1`)
	}
	if MatchSlot("1", slot2) {
		t.Error(`"1" should not match slot 2`)
	}
}

func TestNormalizeDayName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Thứ Hai", "Monday"},
		{"Thứ Ba", "Tuesday"},
		{"Thứ Tư", "Wednesday"},
		{"Thứ Năm", "Thursday"},
		{"Thứ Sáu", "Friday"},
		{"Thứ Bảy", "Saturday"},
		{"Monday", "Monday"},
		{" Tuesday ", "Tuesday"},
		{"Chủ Nhật", "Chủ Nhật"}, // Sunday is not mapped, passes through
	}
	for _, tc := range cases {
		if got := NormalizeDayName(tc.in); got != tc.want {
			t.Errorf("NormalizeDayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchDayVietnamese(t *testing.T) {
	if !MatchDay("Thứ Ba", 1) {
		t.Error(`"Thứ Ba" should match dayIndex 1 (Tuesday)`)
	}
	if MatchDay("Thứ Ba", 0) {
		t.Error(`"Thứ Ba" must not match dayIndex 0`)
	}
	if MatchDay("Monday", 6) {
		t.Error("dayIndex 6 is outside the grid")
	}
	if MatchDay("Monday", -1) {
		t.Error("negative dayIndex must not match")
	}
}
