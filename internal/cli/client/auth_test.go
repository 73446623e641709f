package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrack-dev/jobtrack/internal/cli/session"
)

func loginServer(t *testing.T, wantPath string, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte(body))
	}))
}

func TestLogin_SavesSessionBeforeReturning(t *testing.T) {
	server := loginServer(t, "/users/login",
		`{"token":"t1","user":{"id":1,"name":"Test User","email":"a@b.com","role":"USER","isActive":true}}`)
	defer server.Close()

	store := session.NewMemoryStore()
	c := New(server.URL, store)
	c.SetSurface(SurfaceLogin)

	resp, err := c.Login(Credentials{Email: "a@b.com", Password: "12345678"}, false)
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, session.RoleUser, resp.User.Role)

	assert.True(t, session.IsAuthenticated(store))
	assert.False(t, session.HasRole(store, session.RoleAdmin, session.RoleSuperAdmin))

	sess, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "t1", sess.Token)
	assert.Equal(t, int64(1), sess.User.ID)
}

func TestLogin_AdminDomainSelectsAdminEndpoint(t *testing.T) {
	server := loginServer(t, "/admin/login",
		`{"token":"t2","user":{"id":2,"name":"Admin","email":"admin@b.com","role":"ADMIN","isActive":true}}`)
	defer server.Close()

	store := session.NewMemoryStore()
	c := New(server.URL, store)
	c.SetSurface(SurfaceLogin)

	_, err := c.Login(Credentials{Email: "admin@b.com", Password: "12345678"}, true)
	require.NoError(t, err)
	assert.True(t, session.HasRole(store, session.RoleAdmin, session.RoleSuperAdmin))
}

func TestLogin_RoleComesFromServer(t *testing.T) {
	// Logging in through the user endpoint still yields an admin session
	// when the server says so; the client never computes roles.
	server := loginServer(t, "/users/login",
		`{"token":"t3","user":{"id":3,"name":"Super","email":"s@b.com","role":"SUPER_ADMIN","isActive":true}}`)
	defer server.Close()

	store := session.NewMemoryStore()
	c := New(server.URL, store)
	c.SetSurface(SurfaceLogin)

	_, err := c.Login(Credentials{Email: "s@b.com", Password: "12345678"}, false)
	require.NoError(t, err)
	assert.True(t, session.HasRole(store, session.RoleAdmin, session.RoleSuperAdmin))
}

func TestLogin_MalformedResponseIsNotALogin(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing token", `{"user":{"id":1,"role":"USER"}}`},
		{"missing user", `{"token":"t1"}`},
		{"empty body", ``},
		{"not json", `<html></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := loginServer(t, "/users/login", tt.body)
			defer server.Close()

			store := session.NewMemoryStore()
			c := New(server.URL, store)
			c.SetSurface(SurfaceLogin)

			_, err := c.Login(Credentials{Email: "a@b.com", Password: "12345678"}, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)

			// A malformed success must not leave a partial session.
			assert.False(t, session.IsAuthenticated(store))
		})
	}
}

func TestRegister_DoesNotEstablishSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/register", r.URL.Path)

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Test User", req.Name)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"message":"User registered successfully","user":{"id":5,"name":"Test User","email":"a@b.com","role":"USER","isActive":true}}`))
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	c := New(server.URL, store)
	c.SetSurface(SurfaceSignup)

	resp, err := c.Register(RegisterRequest{Name: "Test User", Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully", resp.Message)

	// Registration stays Anonymous; login is a separate explicit step.
	assert.False(t, session.IsAuthenticated(store))
}

func TestRegister_ValidationErrorsReachCallerAsOneMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Validation failed","errors":{"name":"is required","password":"must be at least 8 characters"}}`))
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemoryStore())
	c.SetSurface(SurfaceSignup)

	_, err := c.Register(RegisterRequest{Name: "", Email: "x@y.com", Password: "short"})
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Len(t, reqErr.Fields, 2)

	// The display layer shows one joined message containing every field.
	msg := reqErr.Error()
	assert.Contains(t, msg, "name: is required")
	assert.Contains(t, msg, "password: must be at least 8 characters")
}

func TestLogout_ClearsSessionAndNavigates(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save("t1", session.UserRecord{ID: 1, Role: session.RoleUser}))

	nav := &countingNavigator{}
	c := New("http://unused.invalid", store)
	c.SetNavigator(nav)

	require.NoError(t, c.Logout())

	assert.False(t, session.IsAuthenticated(store))
	assert.Equal(t, []Surface{SurfaceLogin}, nav.calls())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess, "no token or user may remain after logout")
}

func TestLoginThenLogout_LeavesNoSession(t *testing.T) {
	server := loginServer(t, "/users/login",
		`{"token":"t1","user":{"id":1,"name":"Test User","email":"a@b.com","role":"USER","isActive":true}}`)
	defer server.Close()

	store := session.NewMemoryStore()
	c := New(server.URL, store)
	c.SetSurface(SurfaceLogin)

	_, err := c.Login(Credentials{Email: "a@b.com", Password: "12345678"}, false)
	require.NoError(t, err)
	require.NoError(t, c.Logout())

	assert.False(t, session.IsAuthenticated(store))
}

func TestLogout_SucceedsWithoutSession(t *testing.T) {
	// Logout is a client-side guarantee; nothing to clear is still success.
	c := New("http://unused.invalid", session.NewMemoryStore())
	require.NoError(t, c.Logout())
}
