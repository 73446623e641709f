package client

import (
	"fmt"
	"net/http"
)

// Job is a tracked application record
type Job struct {
	ID          int64  `json:"id,omitempty"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	Source      string `json:"source"`
	AppliedDate string `json:"appliedDate"`
}

// Enumerations accepted by the server for job fields
var (
	JobStatuses = []string{"APPLIED", "PHONE_SCREEN", "INTERVIEW", "OFFER", "REJECTED", "ON_HOLD"}
	JobRoles    = []string{"FRONTEND", "BACKEND", "FULLSTACK", "DATA_ANALYST", "OTHER"}
	JobSources  = []string{"LINKEDIN", "COMPANY_SITE", "REFERRAL", "JOB_BOARD", "RECRUITER", "OTHER"}
)

// DashboardStats summarizes a user's applications by status
type DashboardStats struct {
	TotalJobs    int64            `json:"totalJobs"`
	StatusCounts map[string]int64 `json:"statusCounts"`
}

// UserJobs returns all applications logged by the given user
func (c *Client) UserJobs(userID int64) ([]Job, error) {
	var jobs []Job
	if err := c.do(http.MethodGet, fmt.Sprintf("/jobs/user/%d", userID), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// DashboardStats returns the per-status application counts for the given user
func (c *Client) DashboardStats(userID int64) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(http.MethodGet, fmt.Sprintf("/jobs/user/%d/dashboard-stats", userID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreateJob logs a new application
func (c *Client) CreateJob(job Job) (*Job, error) {
	var created Job
	if err := c.do(http.MethodPost, "/jobs", job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateJob updates an existing application. Zero-valued fields are sent as
// given; the server treats the body as a partial update.
func (c *Client) UpdateJob(jobID int64, job Job) (*Job, error) {
	var updated Job
	if err := c.do(http.MethodPut, fmt.Sprintf("/jobs/%d", jobID), job, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteJob removes an application
func (c *Client) DeleteJob(jobID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/jobs/%d", jobID), nil, nil)
}
