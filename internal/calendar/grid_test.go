package calendar

import (
	"testing"
	"time"

	"github.com/rantevou-app/gateway/internal/domain/appointment"
)

func apptAt(id uint, start time.Time) appointment.Appointment {
	return appointment.Appointment{
		ID:     id,
		Start:  start,
		Status: appointment.StatusPending,
	}
}

func TestMonthGrid_Always42Cells(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tc := range cases {
		grid := MonthGrid(tc.year, tc.month, nil, now, nil)
		if len(grid) != GridSize {
			t.Fatalf("%d-%02d: expected %d cells, got %d", tc.year, tc.month, GridSize, len(grid))
		}

		inMonth := 0
		for _, day := range grid {
			if day.IsCurrentMonth {
				inMonth++
			}
		}
		if inMonth != tc.days {
			t.Errorf("%d-%02d: expected %d current-month cells, got %d", tc.year, tc.month, tc.days, inMonth)
		}
	}
}

func TestMonthGrid_FirstOfMonthAlignedToWeekday(t *testing.T) {
	now := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

	// January 1st 2025 is a Wednesday, so three leading December cells.
	grid := MonthGrid(2025, time.January, nil, now, nil)

	for i := 0; i < 3; i++ {
		if grid[i].IsCurrentMonth {
			t.Fatalf("cell %d should belong to the previous month", i)
		}
	}
	if !grid[3].IsCurrentMonth || grid[3].Date.Day() != 1 {
		t.Fatalf("cell 3 should be January 1st, got %v", grid[3].Date)
	}
	if grid[3].Date.Weekday() != time.Wednesday {
		t.Fatalf("January 1st 2025 should land on Wednesday, got %v", grid[3].Date.Weekday())
	}
}

func TestMonthGrid_BucketsEachAppointmentOnce(t *testing.T) {
	now := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

	appts := []appointment.Appointment{
		apptAt(1, time.Date(2025, time.January, 11, 9, 0, 0, 0, time.UTC)),
		apptAt(2, time.Date(2025, time.January, 31, 23, 30, 0, 0, time.UTC)),
		apptAt(3, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}

	grid := MonthGrid(2025, time.January, nil, now, appts)

	seen := map[uint]int{}
	for _, day := range grid {
		for _, entry := range day.Appointments {
			seen[entry.ID]++
		}
	}

	for _, a := range appts {
		if seen[a.ID] != 1 {
			t.Errorf("appointment %d bucketed %d times, want exactly once", a.ID, seen[a.ID])
		}
	}
}

func TestMonthGrid_BucketingIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)

	appts := []appointment.Appointment{
		apptAt(1, time.Date(2025, time.March, 10, 0, 0, 1, 0, time.UTC)),
		apptAt(2, time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)),
	}

	grid := MonthGrid(2025, time.March, nil, now, appts)

	for _, day := range grid {
		if day.Date.Day() == 10 && day.IsCurrentMonth {
			if len(day.Appointments) != 2 {
				t.Fatalf("expected both appointments on March 10, got %d", len(day.Appointments))
			}
			return
		}
	}
	t.Fatal("March 10 cell not found")
}

func TestMonthGrid_BucketKeepsSourceOrder(t *testing.T) {
	now := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

	// Later time listed first: bucketing must not sort.
	appts := []appointment.Appointment{
		apptAt(7, time.Date(2025, time.January, 20, 18, 0, 0, 0, time.UTC)),
		apptAt(8, time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)),
	}

	grid := MonthGrid(2025, time.January, nil, now, appts)

	for _, day := range grid {
		if day.IsCurrentMonth && day.Date.Day() == 20 {
			if len(day.Appointments) != 2 {
				t.Fatalf("expected 2 appointments, got %d", len(day.Appointments))
			}
			if day.Appointments[0].ID != 7 || day.Appointments[1].ID != 8 {
				t.Fatalf("bucket reordered appointments: %d, %d", day.Appointments[0].ID, day.Appointments[1].ID)
			}
			return
		}
	}
	t.Fatal("January 20 cell not found")
}

func TestMonthGrid_TodayAndSelectedFlags(t *testing.T) {
	now := time.Date(2025, time.January, 15, 14, 30, 0, 0, time.UTC)
	selected := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	grid := MonthGrid(2025, time.January, &selected, now, nil)

	todays, selecteds := 0, 0
	for _, day := range grid {
		if day.IsToday {
			todays++
			if day.Date.Day() != 15 {
				t.Errorf("wrong today cell: %v", day.Date)
			}
		}
		if day.IsSelected {
			selecteds++
			if day.Date.Day() != 20 {
				t.Errorf("wrong selected cell: %v", day.Date)
			}
		}
	}
	if todays != 1 {
		t.Errorf("expected exactly one today cell, got %d", todays)
	}
	if selecteds != 1 {
		t.Errorf("expected exactly one selected cell, got %d", selecteds)
	}

	// Viewing another month: no cell is today.
	grid = MonthGrid(2025, time.March, nil, now, nil)
	for _, day := range grid {
		if day.IsToday {
			t.Fatalf("no cell should be today when viewing March, got %v", day.Date)
		}
	}
}

func TestMonthGrid_SkipsInvalidStart(t *testing.T) {
	now := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

	appts := []appointment.Appointment{
		{ID: 1, RawDateTime: "not-a-date"}, // zero Start
		apptAt(2, time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)),
	}

	grid := MonthGrid(2025, time.January, nil, now, appts)

	for _, day := range grid {
		for _, entry := range day.Appointments {
			if entry.ID == 1 {
				t.Fatal("appointment without a valid start must never be bucketed")
			}
		}
	}
}

func TestMonthGrid_PastFlag(t *testing.T) {
	now := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

	appts := []appointment.Appointment{
		apptAt(1, time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)),
		apptAt(2, time.Date(2025, time.January, 15, 6, 0, 0, 0, time.UTC)), // earlier today: not past
		apptAt(3, time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)),
	}

	grid := MonthGrid(2025, time.January, nil, now, appts)

	want := map[uint]bool{1: true, 2: false, 3: false}
	for _, day := range grid {
		for _, entry := range day.Appointments {
			if entry.IsPast != want[entry.ID] {
				t.Errorf("appointment %d: IsPast=%v, want %v", entry.ID, entry.IsPast, want[entry.ID])
			}
		}
	}
}

func TestAppointmentsOn_SourceOrderUnsorted(t *testing.T) {
	now := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)

	appts := []appointment.Appointment{
		apptAt(1, time.Date(2025, time.January, 11, 17, 0, 0, 0, time.UTC)),
		apptAt(2, time.Date(2025, time.January, 12, 9, 0, 0, 0, time.UTC)),
		apptAt(3, time.Date(2025, time.January, 11, 8, 0, 0, 0, time.UTC)),
	}

	feed := AppointmentsOn(date, now, appts)
	if len(feed) != 2 {
		t.Fatalf("expected 2 same-day appointments, got %d", len(feed))
	}
	if feed[0].ID != 1 || feed[1].ID != 3 {
		t.Fatalf("feed must keep source order, got %d, %d", feed[0].ID, feed[1].ID)
	}
}
