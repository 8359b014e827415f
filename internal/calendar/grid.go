package calendar

import (
	"time"

	"github.com/rantevou-app/gateway/internal/domain/appointment"
)

// GridSize is the fixed display contract: 6 weeks of 7 days, regardless of
// month length or leap years.
const GridSize = 42

// Entry is one appointment placed on the grid. IsPast compares the start
// against today at day granularity, so this morning's appointment is not
// crossed out this afternoon.
type Entry struct {
	appointment.Appointment
	IsPast bool `json:"is_past"`
}

// Day is one cell of the month grid. Appointments keep source-list order;
// bucketing is not sorting.
type Day struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"is_current_month"`
	IsToday        bool      `json:"is_today"`
	IsSelected     bool      `json:"is_selected"`
	Appointments   []Entry   `json:"appointments"`
}

// MonthGrid builds the 42-cell grid for the month containing year/month:
// trailing days of the previous month to align the 1st to its weekday
// column (Sunday-first), the month itself, then leading days of the next
// month. now supplies both "today" and the zone in which day boundaries are
// decided. Appointments with an unparseable timestamp are skipped, never an
// error.
func MonthGrid(year int, month time.Month, selected *time.Time, now time.Time, appts []appointment.Appointment) []Day {
	loc := now.Location()

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	today := dayStart(now)

	// Weekday() already follows the 0=Sunday convention.
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := start.AddDate(0, 0, i)
		inMonth := date.Month() == month && date.Year() == year

		days = append(days, Day{
			Date:           date,
			IsCurrentMonth: inMonth,
			IsToday:        inMonth && sameDay(date, today),
			IsSelected:     selected != nil && sameDay(date, *selected),
			Appointments:   bucketFor(date, today, loc, appts),
		})
	}

	return days
}

// AppointmentsOn returns the unsorted same-day feed for the detail view
// under the grid: source order, no reordering.
func AppointmentsOn(date time.Time, now time.Time, appts []appointment.Appointment) []Entry {
	return bucketFor(date, dayStart(now), now.Location(), appts)
}

func bucketFor(date, today time.Time, loc *time.Location, appts []appointment.Appointment) []Entry {
	bucket := make([]Entry, 0)
	for _, a := range appts {
		if !a.HasValidStart() {
			continue
		}
		start := a.Start.In(loc)
		if !sameDay(start, date) {
			continue
		}
		bucket = append(bucket, Entry{
			Appointment: a,
			IsPast:      start.Before(today),
		})
	}
	return bucket
}

// sameDay ignores time-of-day entirely; appointments carry full timestamps
// but calendar placement is by date alone.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
