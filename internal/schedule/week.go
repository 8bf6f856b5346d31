package schedule

import "time"

// WeekDay is one displayed day of a week window.
type WeekDay struct {
	Date    time.Time // calendar date at local midnight
	Name    string    // English weekday name ("Monday" .. "Sunday")
	IsToday bool      // whether this date equals the reference date
}

// WeekWindow is a Monday-anchored run of seven consecutive dates. The room
// grid renders only the first six columns (Monday–Saturday) but the window
// always carries the full week so other views can use Sunday too.
type WeekWindow struct {
	Monday time.Time // Monday of the window at local midnight
	Days   []WeekDay // seven days starting at Monday
}

// GridDays is the number of day columns rendered by the room grid
// (Monday through Saturday).
const GridDays = 6

// Window computes the week window containing ref shifted by offset weeks.
// Offset 0 is the week of ref itself, +1 the next week, -1 the previous.
// The reference time of day is normalized to midnight before any date
// arithmetic so DST shifts and intra-day clock drift cannot move the
// window by a day.
func Window(ref time.Time, offset int) WeekWindow {
	day := midnight(ref)

	// time.Weekday numbers Sunday as 0; Monday-anchored weeks treat
	// Sunday as the sixth day since Monday.
	wd := int(day.Weekday())
	sinceMonday := wd - 1
	if wd == 0 {
		sinceMonday = 6
	}
	monday := midnight(day.AddDate(0, 0, -sinceMonday+offset*7))

	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := midnight(monday.AddDate(0, 0, i))
		days = append(days, WeekDay{
			Date:    d,
			Name:    d.Weekday().String(),
			IsToday: d.Equal(day),
		})
	}
	return WeekWindow{Monday: monday, Days: days}
}

// WindowFrom computes the window for an explicit week start date, used when
// the client supplies weekStart rather than an offset.
func WindowFrom(weekStart time.Time) WeekWindow {
	return Window(weekStart, 0)
}

// DayIndex returns the grid column for an English weekday name, Monday=0
// through Saturday=5, or -1 when the name is not a grid day.
func DayIndex(name string) int {
	for i, n := range gridDayNames {
		if n == name {
			return i
		}
	}
	return -1
}

// gridDayNames are the English names of the six grid columns in order.
var gridDayNames = [GridDays]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// GridDayName returns the English weekday name for a grid column index.
// It panics on an out-of-range index; callers iterate 0..GridDays-1.
func GridDayName(idx int) string {
	return gridDayNames[idx]
}

// midnight truncates t to local midnight of its calendar date.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
