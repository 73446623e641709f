package client

import (
	"fmt"
	"net/http"

	"github.com/jobtrack-dev/jobtrack/internal/cli/session"
)

// AdminStats summarizes the user base for the admin dashboard
type AdminStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	ActiveUsers   int64 `json:"activeUsers"`
	InactiveUsers int64 `json:"inactiveUsers"`
	AdminUsers    int64 `json:"adminUsers"`
}

// UserActionResponse is returned by the admin user-management endpoints:
// an ack plus the updated user record.
type UserActionResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	User    *session.UserRecord `json:"user"`
}

// Users returns every registered user. Admin only.
func (c *Client) Users() ([]session.UserRecord, error) {
	var users []session.UserRecord
	if err := c.do(http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Statistics returns aggregate user counts. Admin only.
func (c *Client) Statistics() (*AdminStats, error) {
	var stats AdminStats
	if err := c.do(http.MethodGet, "/admin/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// userAction hits one of the PUT /admin/users/{id}/<action> endpoints
func (c *Client) userAction(userID int64, action string) (*UserActionResponse, error) {
	var resp UserActionResponse
	path := fmt.Sprintf("/admin/users/%d/%s", userID, action)
	if err := c.do(http.MethodPut, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MakeAdmin grants admin privileges to a user
func (c *Client) MakeAdmin(userID int64) (*UserActionResponse, error) {
	return c.userAction(userID, "make-admin")
}

// RevokeAdmin revokes a user's admin privileges
func (c *Client) RevokeAdmin(userID int64) (*UserActionResponse, error) {
	return c.userAction(userID, "revoke-admin")
}

// ActivateUser re-enables a deactivated account
func (c *Client) ActivateUser(userID int64) (*UserActionResponse, error) {
	return c.userAction(userID, "activate")
}

// DeactivateUser disables an account without deleting it
func (c *Client) DeactivateUser(userID int64) (*UserActionResponse, error) {
	return c.userAction(userID, "deactivate")
}

// DeleteUser permanently removes an account
func (c *Client) DeleteUser(userID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/admin/users/%d", userID), nil, nil)
}
