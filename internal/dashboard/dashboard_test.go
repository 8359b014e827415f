package dashboard

import (
	"testing"
	"time"

	"github.com/rantevou-app/gateway/internal/domain/appointment"
)

func appt(id uint, start time.Time, status appointment.Status) appointment.Appointment {
	return appointment.Appointment{
		ID:         id,
		ClientName: "Maria",
		Service:    "Haircut",
		Start:      start,
		Status:     status,
	}
}

func TestBuild_Stats(t *testing.T) {
	now := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	recent := []appointment.Appointment{
		appt(1, now.Add(2*time.Hour), appointment.StatusPending),
		appt(2, now.Add(-3*time.Hour), appointment.StatusConfirmed),
		appt(3, now.AddDate(0, 0, 1), appointment.StatusPending),
		appt(4, now.AddDate(0, 0, -1), appointment.StatusCompleted),
	}

	data := Build(recent, 120, 45, nil, now)

	if data.Stats.TotalAppointments != 120 || data.Stats.TotalClients != 45 {
		t.Fatalf("totals: %+v", data.Stats)
	}
	if data.Stats.TodayAppointments != 2 {
		t.Fatalf("today = %d, want 2", data.Stats.TodayAppointments)
	}
	if data.Stats.PendingAppointments != 2 {
		t.Fatalf("pending = %d, want 2", data.Stats.PendingAppointments)
	}
	if data.Stats.AppointmentGrowth == "" || data.Stats.ClientGrowth == "" {
		t.Fatal("growth placeholders must be populated")
	}
}

func TestBuild_InvalidStartNotCountedToday(t *testing.T) {
	now := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	recent := []appointment.Appointment{
		{ID: 1, Status: appointment.StatusPending}, // zero Start
		appt(2, now, appointment.StatusConfirmed),
	}

	data := Build(recent, 2, 1, nil, now)

	if data.Stats.TodayAppointments != 1 {
		t.Fatalf("today = %d, want 1", data.Stats.TodayAppointments)
	}
	// Status still counts even when the timestamp is unusable.
	if data.Stats.PendingAppointments != 1 {
		t.Fatalf("pending = %d, want 1", data.Stats.PendingAppointments)
	}
}

func TestBuild_FeedsCappedAtFive(t *testing.T) {
	now := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	var many []appointment.Appointment
	for i := 0; i < 8; i++ {
		many = append(many, appt(uint(i+1), now.Add(time.Duration(i)*time.Hour), appointment.StatusPending))
	}

	data := Build(many, 8, 0, many, now)

	if len(data.RecentAppointments) != 5 {
		t.Fatalf("recent feed = %d rows, want 5", len(data.RecentAppointments))
	}
	if len(data.UpcomingAppointments) != 5 {
		t.Fatalf("upcoming feed = %d rows, want 5", len(data.UpcomingAppointments))
	}
}

func TestBuild_UpcomingSortedChronologically(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	upcoming := []appointment.Appointment{
		appt(1, time.Date(2025, 3, 25, 14, 0, 0, 0, time.UTC), appointment.StatusPending),
		appt(2, time.Date(2025, 3, 20, 9, 30, 0, 0, time.UTC), appointment.StatusPending),
		appt(3, time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC), appointment.StatusPending),
	}

	data := Build(nil, 0, 0, upcoming, now)

	got := []uint{}
	for _, r := range data.UpcomingAppointments {
		got = append(got, r.ID)
	}
	want := []uint{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("upcoming order = %v, want %v", got, want)
		}
	}
}

func TestBuild_RowFormattingAndFallbacks(t *testing.T) {
	now := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	recent := []appointment.Appointment{
		{
			ID:      1,
			Service: "Massage",
			Start:   time.Date(2025, 3, 21, 16, 30, 0, 0, time.UTC),
			Status:  appointment.StatusConfirmed,
		},
	}

	data := Build(recent, 1, 0, nil, now)

	row := data.RecentAppointments[0]
	if row.ClientName != "Unknown Client" {
		t.Fatalf("client fallback = %q", row.ClientName)
	}
	if row.Date != "21/03/2025" {
		t.Fatalf("date = %q", row.Date)
	}
	if row.Time != "16:30" {
		t.Fatalf("time = %q", row.Time)
	}
	if row.Status != "confirmed" {
		t.Fatalf("status = %q", row.Status)
	}
}
