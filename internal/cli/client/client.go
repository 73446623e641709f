package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/jobtrack-dev/jobtrack/internal/cli/session"
)

// Surface identifies which part of the app a client call originates from.
// The 401 policy needs it: an unauthenticated caller on the login or signup
// surface legitimately receives a 401, and redirecting there would loop.
type Surface string

const (
	SurfaceLogin     Surface = "login"
	SurfaceSignup    Surface = "signup"
	SurfaceHome      Surface = "home"
	SurfaceDashboard Surface = "dashboard"
	SurfaceAdmin     Surface = "admin"
)

// Navigator receives the navigation side effect when the session is
// invalidated or the user logs out. Implementations decide what "navigate"
// means for their presentation layer.
type Navigator interface {
	NavigateTo(surface Surface)
}

// NavigatorFunc adapts a function to the Navigator interface
type NavigatorFunc func(Surface)

func (f NavigatorFunc) NavigateTo(surface Surface) { f(surface) }

// Client is the authenticated HTTP client for the JobTracker API. Every call
// reads the session store at call time, so a login, logout or invalidation
// between two calls is observed by the later one.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	nav        Navigator
	surface    Surface
	logger     zerolog.Logger

	// Set once by the first observed 401 so that N concurrent rejections
	// collapse to a single clear and a single navigation.
	invalidating atomic.Bool
}

// New creates an API client against the given base URL, e.g.
// "http://localhost:8080/api"
func New(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		store:   store,
		surface: SurfaceHome,
		logger:  zerolog.Nop(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetNavigator sets the receiver of navigation side effects
func (c *Client) SetNavigator(nav Navigator) {
	c.nav = nav
}

// SetSurface declares which surface the client's calls originate from
func (c *Client) SetSurface(surface Surface) {
	c.surface = surface
}

// SetLogger sets the request logger
func (c *Client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// errorEnvelope is the server's error body shape. The server sometimes sends
// only a message and sometimes a field-level validation map; both land here.
type errorEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// do performs one API call: it attaches the bearer token if a session
// exists, sends the request, and decodes the response into out. A success
// response with an empty or non-JSON body leaves out at its zero value
// rather than failing the call.
func (c *Client) do(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := ulid.Make().String()
	req.Header.Set("X-Request-ID", requestID)

	// Recomputed per call: a session change between two calls is observed
	// by the later one.
	if sess, err := c.store.Load(); err == nil && sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.fail(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		// Tolerate malformed success bodies; callers that need a shape
		// check it explicitly.
		_ = json.Unmarshal(data, out)
	}

	return nil
}

// fail translates a non-success response into a RequestError, running the
// invalidation policy first on a 401.
func (c *Client) fail(status int, data []byte) error {
	var env errorEnvelope
	_ = json.Unmarshal(data, &env)
	if env.Message == "" {
		env.Message = "Request failed"
	}

	if status == http.StatusUnauthorized {
		c.invalidate()
	}

	return &RequestError{
		Status:  status,
		Message: env.Message,
		Fields:  FieldErrors(env.Errors),
	}
}

// invalidate clears the session and navigates to the login surface exactly
// once, no matter how many in-flight calls observe a 401. On the login and
// signup surfaces a 401 is a normal rejection, not a stale session, so the
// policy is skipped there.
func (c *Client) invalidate() {
	if c.surface == SurfaceLogin || c.surface == SurfaceSignup {
		return
	}

	if !c.invalidating.CompareAndSwap(false, true) {
		return
	}

	if err := c.store.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to clear invalidated session")
	}

	c.logger.Info().Msg("session invalidated by server")

	if c.nav != nil {
		c.nav.NavigateTo(SurfaceLogin)
	}
}
