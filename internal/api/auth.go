package api

import (
	"context"
	"net/http"

	"github.com/gcunha/taskdeck/internal/domain"
)

// AuthResponse is the body of a successful POST /login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// RegisterResponse is the body of a successful POST /register. Token
// may be empty; the API is free to answer with a message only.
type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Login exchanges credentials for a bearer token via POST /login.
func (c *Client) Login(ctx context.Context, creds domain.LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account via POST /register.
func (c *Client) Register(ctx context.Context, payload domain.RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/register", nil, "", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Authenticate adapts Login to the session store's Authenticator
// interface, returning just the bearer token.
func (c *Client) Authenticate(ctx context.Context, creds domain.LoginRequest) (string, error) {
	resp, err := c.Login(ctx, creds)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
