package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/calendar"
	"github.com/rantevou-app/gateway/internal/domain/appointment"
	"github.com/rantevou-app/gateway/internal/httperr"
	"github.com/rantevou-app/gateway/internal/httpresp"
)

type CalendarHandler struct {
	api *backend.Client
	loc *time.Location
}

func NewCalendarHandler(api *backend.Client, loc *time.Location) *CalendarHandler {
	return &CalendarHandler{api: api, loc: loc}
}

// monthFetchSize covers one month of records; the backend has no
// month-range filter, so we page wide and filter here.
const monthFetchSize = 100

type monthResponse struct {
	Year        int              `json:"year"`
	Month       int              `json:"month"`
	Days        []calendar.Day   `json:"days"`
	SelectedDay []calendar.Entry `json:"selectedDay,omitempty"`
}

// Month serves GET /api/calendar/:year/:month?selected=2025-01-11 with the
// 42-cell grid plus the unsorted feed for the selected day.
func (h *CalendarHandler) Month(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}

	year, errY := strconv.Atoi(c.Param("year"))
	monthNum, errM := strconv.Atoi(c.Param("month"))
	if errY != nil || errM != nil || monthNum < 1 || monthNum > 12 || year < 1 {
		httperr.BadRequest(c, "invalid_month", "Μη έγκυρος μήνας.")
		return
	}
	month := time.Month(monthNum)

	var selected *time.Time
	if raw := c.Query("selected"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_selected_date", "Μη έγκυρη ημερομηνία.")
			return
		}
		selected = &t
	}

	resp, err := h.api.ListAppointments(c.Request.Context(), tok, 0, monthFetchSize)
	if err != nil {
		writeBackendError(c, err, "calendar_fetch_failed", "Αποτυχία φόρτωσης ραντεβού.")
		return
	}

	appts := monthWindow(appointment.FromBackendList(resp.Content, h.loc), year, month, h.loc)

	now := time.Now().In(h.loc)
	days := calendar.MonthGrid(year, month, selected, now, appts)

	out := monthResponse{
		Year:  year,
		Month: monthNum,
		Days:  days,
	}
	if selected != nil {
		out.SelectedDay = calendar.AppointmentsOn(*selected, now, appts)
	}

	httpresp.OK(c, out)
}

// monthWindow keeps appointments whose start falls inside the displayed
// month. Records with an unparseable timestamp drop out here, which is as
// far as they ever get toward the grid.
func monthWindow(appts []appointment.Appointment, year int, month time.Month, loc *time.Location) []appointment.Appointment {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	out := make([]appointment.Appointment, 0, len(appts))
	for _, a := range appts {
		if !a.HasValidStart() {
			continue
		}
		s := a.Start.In(loc)
		if s.Before(start) || !s.Before(end) {
			continue
		}
		out = append(out, a)
	}
	return out
}
