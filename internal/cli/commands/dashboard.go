package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
	"github.com/jobtrack-dev/jobtrack/internal/cli/guard"
)

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your application statistics and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(guard.AccessAuthenticated); err != nil {
				return err
			}

			sess, err := currentSession()
			if err != nil {
				return err
			}

			apiClient, err := newClient(client.SurfaceDashboard)
			if err != nil {
				return err
			}

			return runDashboard(apiClient, sess.User.ID, os.Stdout)
		},
	}
}

// dashboardFetcher is the slice of the API client the dashboard needs
type dashboardFetcher interface {
	DashboardStats(userID int64) (*client.DashboardStats, error)
	UserJobs(userID int64) ([]client.Job, error)
}

// runDashboard fetches stats and applications in parallel. If the session
// went stale, both calls can come back 401 at once; the client collapses
// that to a single clear and a single redirect hint.
func runDashboard(fetcher dashboardFetcher, userID int64, out io.Writer) error {
	var (
		stats *client.DashboardStats
		jobs  []client.Job
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		stats, err = fetcher.DashboardStats(userID)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = fetcher.UserJobs(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Applications: %d total\n\n", stats.TotalJobs)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, status := range client.JobStatuses {
		fmt.Fprintf(w, "  %s\t%d\n", status, stats.StatusCounts[status])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	recent := jobs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	if len(recent) > 0 {
		fmt.Fprintln(out, "\nRecent applications:")
		for _, job := range recent {
			fmt.Fprintf(out, "  #%d %s at %s (%s)\n", job.ID, job.Role, job.Company, job.Status)
		}
	}

	return nil
}
