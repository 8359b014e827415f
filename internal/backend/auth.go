package backend

import (
	"context"
	"net/http"
)

// --------- Requests / Responses ---------

type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthenticateResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`

	// ExpiresIn is the token lifetime in seconds; the session layer turns
	// it into an absolute expiry instant.
	ExpiresIn int64 `json:"expiresIn"`
}

type SignupRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// --------- Operations ---------

func (c *Client) Authenticate(ctx context.Context, username, password string) (AuthenticateResponse, error) {
	var out AuthenticateResponse
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/auth/authenticate",
		body:   AuthenticateRequest{Username: username, Password: password},
	}, &out)
	return out, err
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/auth/signup",
		body:   req,
	}, nil)
}
