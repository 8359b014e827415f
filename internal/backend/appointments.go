package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rantevou-app/gateway/internal/domain/appointment"
)

// --------- Requests ---------

type SaveAppointmentRequest struct {
	ClientID            uint   `json:"clientId"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Status              string `json:"status,omitempty"`
	Notes               string `json:"notes,omitempty"`
	EmailReminder       bool   `json:"emailReminder"`
	ReminderDateTime    string `json:"reminderDateTime,omitempty"`
}

// --------- Operations ---------

func (c *Client) ListAppointments(ctx context.Context, token string, page, size int) (Page[appointment.ReadOnlyDTO], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out Page[appointment.ReadOnlyDTO]
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/appointments",
		token:  token,
		query:  query,
	}, &out)
	return out, err
}

func (c *Client) GetAppointment(ctx context.Context, token string, id uint) (appointment.ReadOnlyDTO, error) {
	var out appointment.ReadOnlyDTO
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/appointments/%d", id),
		token:  token,
	}, &out)
	return out, err
}

func (c *Client) CreateAppointment(ctx context.Context, token string, req SaveAppointmentRequest) (appointment.ReadOnlyDTO, error) {
	var out appointment.ReadOnlyDTO
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/appointments/save",
		token:  token,
		body:   req,
	}, &out)
	return out, err
}

func (c *Client) UpdateAppointment(ctx context.Context, token string, id uint, req SaveAppointmentRequest) (appointment.ReadOnlyDTO, error) {
	var out appointment.ReadOnlyDTO
	err := c.do(ctx, requestSpec{
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/appointments/update/%d", id),
		token:  token,
		body:   req,
	}, &out)
	return out, err
}

func (c *Client) DeleteAppointment(ctx context.Context, token string, id uint) error {
	return c.do(ctx, requestSpec{
		method:            http.MethodDelete,
		path:              fmt.Sprintf("/api/appointments/%d", id),
		token:             token,
		constraintGuarded: true,
	}, nil)
}

func (c *Client) UpcomingAppointments(ctx context.Context, token string) ([]appointment.ReadOnlyDTO, error) {
	var out []appointment.ReadOnlyDTO
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/appointments/upcoming",
		token:  token,
	}, &out)
	return out, err
}

func (c *Client) MarkReminderSent(ctx context.Context, token string, id uint) error {
	return c.do(ctx, requestSpec{
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/appointments/%d/reminder/sent", id),
		token:  token,
	}, nil)
}
