package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rantevou-app/gateway/internal/domain/client"
)

// --------- Requests ---------

type SaveClientRequest struct {
	PersonalInfo client.PersonalInfo `json:"personalInfo"`
	VAT          string              `json:"vat,omitempty"`
	Notes        string              `json:"notes,omitempty"`
}

// --------- Operations ---------

func (c *Client) ListClients(ctx context.Context, token string, page, size int) (Page[client.ReadOnlyDTO], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out Page[client.ReadOnlyDTO]
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/clients",
		token:  token,
		query:  query,
	}, &out)
	return out, err
}

func (c *Client) GetClient(ctx context.Context, token string, id uint) (client.ReadOnlyDTO, error) {
	var out client.ReadOnlyDTO
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/clients/%d", id),
		token:  token,
	}, &out)
	return out, err
}

func (c *Client) CreateClient(ctx context.Context, token string, req SaveClientRequest) (client.ReadOnlyDTO, error) {
	var out client.ReadOnlyDTO
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/clients/save",
		token:  token,
		body:   req,
	}, &out)
	return out, err
}

func (c *Client) UpdateClient(ctx context.Context, token string, id uint, req SaveClientRequest) (client.ReadOnlyDTO, error) {
	var out client.ReadOnlyDTO
	err := c.do(ctx, requestSpec{
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/clients/%d", id),
		token:  token,
		body:   req,
	}, &out)
	return out, err
}

func (c *Client) DeleteClient(ctx context.Context, token string, id uint) error {
	return c.do(ctx, requestSpec{
		method:            http.MethodDelete,
		path:              fmt.Sprintf("/api/clients/%d", id),
		token:             token,
		constraintGuarded: true,
	}, nil)
}

func (c *Client) SearchClients(ctx context.Context, token, name string) ([]client.ReadOnlyDTO, error) {
	query := url.Values{}
	query.Set("name", name)

	var out []client.ReadOnlyDTO
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/clients/search",
		token:  token,
		query:  query,
	}, &out)
	return out, err
}
