package dashboard

import (
	"time"

	"github.com/rantevou-app/gateway/internal/calendar"
	"github.com/rantevou-app/gateway/internal/domain/appointment"
)

// Record is a dashboard row: everything already formatted for display,
// including the locale date/time strings the chronological sort works from.
type Record struct {
	ID         uint   `json:"id"`
	ClientName string `json:"clientName"`
	Service    string `json:"service"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

type Stats struct {
	TotalAppointments   int    `json:"totalAppointments"`
	TotalClients        int    `json:"totalClients"`
	TodayAppointments   int    `json:"todayAppointments"`
	PendingAppointments int    `json:"pendingAppointments"`
	AppointmentGrowth   string `json:"appointmentGrowth"`
	ClientGrowth        string `json:"clientGrowth"`
}

type Data struct {
	Stats                Stats    `json:"stats"`
	RecentAppointments   []Record `json:"recentAppointments"`
	UpcomingAppointments []Record `json:"upcomingAppointments"`
}

const feedLimit = 5

// Build aggregates the dashboard from one page of recent appointments, the
// backend's totals and the upcoming feed. Today/pending counts come from
// the recent page, as the product always computed them.
func Build(recent []appointment.Appointment, totalAppointments, totalClients int, upcoming []appointment.Appointment, now time.Time) Data {
	today, pending := 0, 0
	for _, a := range recent {
		if a.HasValidStart() && sameDay(a.Start.In(now.Location()), now) {
			today++
		}
		if a.Status.IsPending() {
			pending++
		}
	}

	upcomingRecords := toRecords(limit(upcoming), now.Location())
	upcomingRecords = calendar.SortByDisplayTime(upcomingRecords, func(r Record) (string, string) {
		return r.Date, r.Time
	})

	return Data{
		Stats: Stats{
			TotalAppointments:   totalAppointments,
			TotalClients:        totalClients,
			TodayAppointments:   today,
			PendingAppointments: pending,
			// Growth has no backend source yet; the product ships fixed
			// placeholders.
			AppointmentGrowth: "+12%",
			ClientGrowth:      "+8%",
		},
		RecentAppointments:   toRecords(limit(recent), now.Location()),
		UpcomingAppointments: upcomingRecords,
	}
}

func limit(appts []appointment.Appointment) []appointment.Appointment {
	if len(appts) > feedLimit {
		return appts[:feedLimit]
	}
	return appts
}

func toRecords(appts []appointment.Appointment, loc *time.Location) []Record {
	out := make([]Record, 0, len(appts))
	for _, a := range appts {
		out = append(out, Record{
			ID:         a.ID,
			ClientName: a.DisplayClientName(),
			Service:    a.Service,
			Date:       a.DateLabel(loc),
			Time:       a.TimeLabel(loc),
			Status:     a.Status.Display(),
		})
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
