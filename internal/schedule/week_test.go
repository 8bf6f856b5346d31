package schedule

import (
	"testing"
	"time"
)

func TestWindowAlwaysStartsMondayMidnight(t *testing.T) {
	refs := []time.Time{
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local),   // a Monday
		time.Date(2025, 3, 5, 14, 30, 12, 0, time.Local), // mid-week, mid-day
		time.Date(2025, 3, 8, 23, 59, 59, 0, time.Local), // Saturday night
		time.Date(2025, 3, 9, 1, 0, 0, 0, time.Local),    // Sunday, maps to previous Monday
		time.Date(2024, 12, 31, 12, 0, 0, 0, time.Local), // year boundary
	}
	for _, ref := range refs {
		for _, offset := range []int{-3, -1, 0, 1, 5} {
			w := Window(ref, offset)
			if w.Monday.Weekday() != time.Monday {
				t.Errorf("Window(%v, %d).Monday = %v, not a Monday", ref, offset, w.Monday)
			}
			if h, m, s := w.Monday.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("Window(%v, %d).Monday = %v, not midnight", ref, offset, w.Monday)
			}
			next := Window(ref, offset+1)
			if want := w.Monday.AddDate(0, 0, 7); !next.Monday.Equal(want) {
				t.Errorf("offset %d -> %d gave Monday %v, want %v", offset, offset+1, next.Monday, want)
			}
		}
	}
}

func TestWindowSundayAnchorsToPrecedingMonday(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 10, 0, 0, 0, time.Local)
	w := Window(sunday, 0)
	want := time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local)
	if !w.Monday.Equal(want) {
		t.Fatalf("Monday = %v, want %v", w.Monday, want)
	}
}

func TestWindowDays(t *testing.T) {
	ref := time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local) // Wednesday
	w := Window(ref, 0)
	if len(w.Days) != 7 {
		t.Fatalf("len(Days) = %d, want 7", len(w.Days))
	}
	wantNames := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, d := range w.Days {
		if d.Name != wantNames[i] {
			t.Errorf("Days[%d].Name = %q, want %q", i, d.Name, wantNames[i])
		}
		if want := w.Monday.AddDate(0, 0, i); !d.Date.Equal(want) {
			t.Errorf("Days[%d].Date = %v, want %v", i, d.Date, want)
		}
	}
	if !w.Days[2].IsToday {
		t.Errorf("Days[2].IsToday = false, want true for the reference Wednesday")
	}
	if w.Days[0].IsToday || w.Days[6].IsToday {
		t.Errorf("only the reference day may be flagged IsToday")
	}
}

func TestWindowOffsetClearsIsToday(t *testing.T) {
	ref := time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local)
	w := Window(ref, 1)
	for i, d := range w.Days {
		if d.IsToday {
			t.Errorf("Days[%d].IsToday = true in an offset week", i)
		}
	}
}

func TestDayIndex(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Monday", 0},
		{"Tuesday", 1},
		{"Saturday", 5},
		{"Sunday", -1},
		{"Funday", -1},
	}
	for _, tc := range cases {
		if got := DayIndex(tc.name); got != tc.want {
			t.Errorf("DayIndex(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}
