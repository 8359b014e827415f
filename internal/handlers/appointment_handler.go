package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/domain/appointment"
	"github.com/rantevou-app/gateway/internal/httperr"
	"github.com/rantevou-app/gateway/internal/httpresp"
)

type AppointmentHandler struct {
	api *backend.Client
	loc *time.Location
}

func NewAppointmentHandler(api *backend.Client, loc *time.Location) *AppointmentHandler {
	return &AppointmentHandler{api: api, loc: loc}
}

// ======================================================
// REQUESTS
// ======================================================

type SaveAppointmentRequest struct {
	ClientID            uint   `json:"clientId" binding:"required"`
	AppointmentDateTime string `json:"appointmentDateTime" binding:"required"`
	Status              string `json:"status"`
	Notes               string `json:"notes"`
	EmailReminder       bool   `json:"emailReminder"`
	ReminderDateTime    string `json:"reminderDateTime"`
}

func (r SaveAppointmentRequest) toBackend() backend.SaveAppointmentRequest {
	return backend.SaveAppointmentRequest{
		ClientID:            r.ClientID,
		AppointmentDateTime: r.AppointmentDateTime,
		Status:              string(appointment.ParseStatus(r.Status)),
		Notes:               r.Notes,
		EmailReminder:       r.EmailReminder,
		ReminderDateTime:    r.ReminderDateTime,
	}
}

// ======================================================
// LIST / GET / UPCOMING
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	page, size := pageParams(c, 10)

	resp, err := h.api.ListAppointments(c.Request.Context(), tok, page, size)
	if err != nil {
		writeBackendError(c, err, "appointments_fetch_failed", "Αποτυχία φόρτωσης ραντεβού.")
		return
	}

	httpresp.OK(c, httpresp.Page[appointment.Appointment]{
		Content:       appointment.FromBackendList(resp.Content, h.loc),
		TotalPages:    resp.TotalPages,
		TotalElements: resp.TotalElements,
		Size:          resp.Size,
		Number:        resp.Number,
	})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	dto, err := h.api.GetAppointment(c.Request.Context(), tok, id)
	if err != nil {
		writeBackendError(c, err, "appointment", "Αποτυχία φόρτωσης ραντεβού.")
		return
	}

	httpresp.OK(c, appointment.FromBackend(dto, h.loc))
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}

	dtos, err := h.api.UpcomingAppointments(c.Request.Context(), tok)
	if err != nil {
		writeBackendError(c, err, "upcoming_fetch_failed", "Αποτυχία φόρτωσης επόμενων ραντεβού.")
		return
	}

	httpresp.List(c, appointment.FromBackendList(dtos, h.loc))
}

// ======================================================
// CREATE / UPDATE / DELETE / REMINDER
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}

	var req SaveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Μη έγκυρα στοιχεία ραντεβού.")
		return
	}

	dto, err := h.api.CreateAppointment(c.Request.Context(), tok, req.toBackend())
	if err != nil {
		writeBackendError(c, err, "appointment_create_failed", "Αποτυχία δημιουργίας ραντεβού.")
		return
	}

	c.JSON(http.StatusCreated, appointment.FromBackend(dto, h.loc))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SaveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Μη έγκυρα στοιχεία ραντεβού.")
		return
	}

	dto, err := h.api.UpdateAppointment(c.Request.Context(), tok, id, req.toBackend())
	if err != nil {
		writeBackendError(c, err, "appointment_update_failed", "Αποτυχία ενημέρωσης ραντεβού.")
		return
	}

	httpresp.OK(c, appointment.FromBackend(dto, h.loc))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.api.DeleteAppointment(c.Request.Context(), tok, id); err != nil {
		if backend.IsConstraintViolation(err) {
			httperr.Conflict(c, "appointment_has_dependencies",
				"Δεν μπορείς να διαγράψεις το ραντεβού επειδή έχει συνδεδεμένα δεδομένα.")
			return
		}
		writeBackendError(c, err, "appointment_delete_failed", "Αποτυχία διαγραφής ραντεβού.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *AppointmentHandler) MarkReminderSent(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.api.MarkReminderSent(c.Request.Context(), tok, id); err != nil {
		writeBackendError(c, err, "reminder_update_failed", "Αποτυχία ενημέρωσης υπενθύμισης.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminderSent": true})
}
