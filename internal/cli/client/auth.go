package client

import (
	"fmt"
	"net/http"

	"github.com/jobtrack-dev/jobtrack/internal/cli/session"
)

// Credentials is the login request body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by both login endpoints
type LoginResponse struct {
	Token string             `json:"token"`
	User  session.UserRecord `json:"user"`
}

// Login authenticates against the user or admin domain. Which roles the
// credentials actually hold is the server's call; asAdmin only selects the
// endpoint. On success the session is saved before Login returns, so a
// subsequent call on any client sharing the store is authenticated.
func (c *Client) Login(creds Credentials, asAdmin bool) (*LoginResponse, error) {
	path := "/users/login"
	if asAdmin {
		path = "/admin/login"
	}

	var loginResp LoginResponse
	if err := c.do(http.MethodPost, path, creds, &loginResp); err != nil {
		return nil, err
	}

	// A 2xx without both halves of the session is a broken server
	// contract, not a successful login.
	if loginResp.Token == "" || loginResp.User.ID == 0 {
		return nil, fmt.Errorf("login response missing token or user: %w", ErrMalformedResponse)
	}

	if err := c.store.Save(loginResp.Token, loginResp.User); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	// The fresh session can go stale like any other; rearm the 401 latch so
	// a later invalidation on this client runs the policy again.
	c.invalidating.Store(false)

	return &loginResp, nil
}

// RegisterRequest is the account creation request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the body returned on successful registration
type RegisterResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	User    *session.UserRecord `json:"user"`
}

// Register creates an account. It never establishes a session: the caller
// logs in explicitly afterwards. Server-side validation failures come back
// as a *RequestError with a field-level error map.
func (c *Client) Register(req RegisterRequest) (*RegisterResponse, error) {
	var regResp RegisterResponse
	if err := c.do(http.MethodPost, "/users/register", req, &regResp); err != nil {
		return nil, err
	}
	return &regResp, nil
}

// Logout drops the session and navigates to the login surface. It is a
// purely local guarantee: no network call is made, so logout succeeds even
// when the service is unreachable.
func (c *Client) Logout() error {
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if c.nav != nil {
		c.nav.NavigateTo(SurfaceLogin)
	}
	return nil
}
