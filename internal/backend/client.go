package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Page mirrors the backend's Spring-style paged response.
type Page[T any] struct {
	Content          []T `json:"content"`
	TotalPages       int `json:"totalPages"`
	TotalElements    int `json:"totalElements"`
	Size             int `json:"size"`
	Number           int `json:"number"`
	NumberOfElements int `json:"numberOfElements"`
}

// Client is the single HTTP doorway to the remote REST API. Every protected
// request carries the caller's bearer token; a 401 on anything except a
// constraint-guarded delete means the session is dead and triggers the
// teardown hook carried in the request context (see WithTeardown).
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type requestSpec struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any

	// constraintGuarded marks deletes that the backend may reject with a
	// referential-integrity 401/409; those must not look like auth expiry.
	constraintGuarded bool
}

type apiErrorBody struct {
	Description string `json:"description"`
	Message     string `json:"message"`
}

func (c *Client) do(ctx context.Context, spec requestSpec, out any) error {
	u := c.baseURL + spec.path
	if len(spec.query) > 0 {
		u += "?" + spec.query.Encode()
	}

	var body io.Reader
	if spec.body != nil {
		raw, err := json.Marshal(spec.body)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if spec.token != "" {
		req.Header.Set("Authorization", "Bearer "+spec.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	return c.asError(ctx, resp, spec)
}

func (c *Client) asError(ctx context.Context, resp *http.Response, spec requestSpec) error {
	var parsed apiErrorBody
	_ = json.NewDecoder(resp.Body).Decode(&parsed)

	description := parsed.Description
	if description == "" {
		description = parsed.Message
	}

	be := &Error{
		Status:      resp.StatusCode,
		Description: description,
	}

	switch resp.StatusCode {
	case http.StatusConflict:
		be.Constraint = true
	case http.StatusUnauthorized:
		if spec.constraintGuarded {
			// The backend answers 401 for deletes blocked by dependent
			// records; the session is still valid.
			be.Constraint = true
		} else if teardown := teardownFrom(ctx); teardown != nil {
			teardown()
		}
	}

	return be
}
