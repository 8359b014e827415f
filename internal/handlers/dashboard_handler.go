package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/dashboard"
	"github.com/rantevou-app/gateway/internal/domain/appointment"
	"github.com/rantevou-app/gateway/internal/httpresp"
)

type DashboardHandler struct {
	api *backend.Client
	loc *time.Location
}

func NewDashboardHandler(api *backend.Client, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{api: api, loc: loc}
}

// recentPageSize matches what the product always fetched for the stats
// page: enough recent records to count today's and pending appointments.
const recentPageSize = 50

func (h *DashboardHandler) Get(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	recentPage, err := h.api.ListAppointments(ctx, tok, 0, recentPageSize)
	if err != nil {
		writeBackendError(c, err, "dashboard_fetch_failed", "Αποτυχία φόρτωσης πίνακα.")
		return
	}

	clientsPage, err := h.api.ListClients(ctx, tok, 0, 10)
	if err != nil {
		writeBackendError(c, err, "dashboard_fetch_failed", "Αποτυχία φόρτωσης πίνακα.")
		return
	}

	upcoming, err := h.api.UpcomingAppointments(ctx, tok)
	if err != nil {
		writeBackendError(c, err, "dashboard_fetch_failed", "Αποτυχία φόρτωσης πίνακα.")
		return
	}

	data := dashboard.Build(
		appointment.FromBackendList(recentPage.Content, h.loc),
		recentPage.TotalElements,
		clientsPage.TotalElements,
		appointment.FromBackendList(upcoming, h.loc),
		time.Now().In(h.loc),
	)

	httpresp.OK(c, data)
}
