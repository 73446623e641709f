package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
	"github.com/jobtrack-dev/jobtrack/internal/cli/forms"
	"github.com/jobtrack-dev/jobtrack/internal/cli/guard"
	"github.com/jobtrack-dev/jobtrack/internal/cli/prompt"
)

// NewJobsCmd creates the jobs command group
func NewJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage your job applications",
	}

	cmd.AddCommand(newJobsListCmd())
	cmd.AddCommand(newJobsAddCmd())
	cmd.AddCommand(newJobsUpdateCmd())
	cmd.AddCommand(newJobsRemoveCmd())

	return cmd
}

func newJobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your job applications",
		Args:    cobra.NoArgs,
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

			return runJobsList(apiClient, sess.User.ID, os.Stdout)
		},
	}
}

// jobLister is the slice of the API client the list command needs
type jobLister interface {
	UserJobs(userID int64) ([]client.Job, error)
}

func runJobsList(lister jobLister, userID int64, out io.Writer) error {
	jobs, err := lister.UserJobs(userID)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(out, "No applications found.")
		fmt.Fprintln(out, "\nLog one with: jobtrack jobs add")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tROLE\tSTATUS\tSOURCE\tAPPLIED")
	fmt.Fprintln(w, "──\t───────\t────\t──────\t──────\t───────")

	for _, job := range jobs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			job.ID,
			job.Company,
			job.Role,
			job.Status,
			job.Source,
			job.AppliedDate,
		)
	}

	return w.Flush()
}

// jobFlags binds the shared add/update flags to a command
func jobFlags(cmd *cobra.Command, job *client.Job) {
	cmd.Flags().StringVar(&job.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&job.Role, "role", "", "Role applied for (FRONTEND, BACKEND, FULLSTACK, DATA_ANALYST, OTHER)")
	cmd.Flags().StringVar(&job.Status, "status", "", "Application status (APPLIED, PHONE_SCREEN, INTERVIEW, OFFER, REJECTED, ON_HOLD)")
	cmd.Flags().StringVar(&job.Source, "source", "", "Where the opening was found (LINKEDIN, COMPANY_SITE, REFERRAL, JOB_BOARD, RECRUITER, OTHER)")
	cmd.Flags().StringVar(&job.AppliedDate, "date", "", "Application date (YYYY-MM-DD)")
}

// fillJobInteractively prompts for the enum fields that were not flagged
func fillJobInteractively(job *client.Job) error {
	if !prompt.Interactive() {
		return nil
	}

	var err error
	if job.Role == "" {
		if job.Role, err = prompt.Select("Role", client.JobRoles); err != nil {
			return err
		}
	}
	if job.Source == "" {
		if job.Source, err = prompt.Select("Source", client.JobSources); err != nil {
			return err
		}
	}
	if job.Status == "" {
		if job.Status, err = prompt.Select("Status", client.JobStatuses); err != nil {
			return err
		}
	}
	return nil
}

func validateJob(job client.Job) error {
	fields := forms.Validate(forms.JobForm{
		Company:     job.Company,
		Role:        job.Role,
		Status:      job.Status,
		Source:      job.Source,
		AppliedDate: job.AppliedDate,
	})
	if fields != nil {
		return fmt.Errorf("invalid application: %s", fields.Flatten())
	}
	return nil
}

func newJobsAddCmd() *cobra.Command {
	var job client.Job

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new job application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(guard.AccessAuthenticated); err != nil {
				return err
			}

			if err := fillJobInteractively(&job); err != nil {
				return err
			}

			if err := validateJob(job); err != nil {
				return err
			}

			apiClient, err := newClient(client.SurfaceDashboard)
			if err != nil {
				return err
			}

			created, err := apiClient.CreateJob(job)
			if err != nil {
				return fmt.Errorf("failed to add application: %w", err)
			}

			fmt.Printf("✓ Added application #%d: %s at %s\n", created.ID, created.Role, created.Company)
			return nil
		},
	}

	jobFlags(cmd, &job)

	return cmd
}

func newJobsUpdateCmd() *cobra.Command {
	var changes client.Job

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a job application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(guard.AccessAuthenticated); err != nil {
				return err
			}

			jobID, err := parseID(args[0])
			if err != nil {
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

			// Merge the flags onto the current record so the update
			// stays a full, valid application.
			jobs, err := apiClient.UserJobs(sess.User.ID)
			if err != nil {
				return fmt.Errorf("failed to load applications: %w", err)
			}

			job, found := findJob(jobs, jobID)
			if !found {
				return fmt.Errorf("application %d not found", jobID)
			}

			mergeJob(&job, changes)

			if err := validateJob(job); err != nil {
				return err
			}

			updated, err := apiClient.UpdateJob(jobID, job)
			if err != nil {
				return fmt.Errorf("failed to update application: %w", err)
			}

			fmt.Printf("✓ Updated application #%d: %s at %s (%s)\n", jobID, updated.Role, updated.Company, updated.Status)
			return nil
		},
	}

	jobFlags(cmd, &changes)

	return cmd
}

func findJob(jobs []client.Job, jobID int64) (client.Job, bool) {
	for _, job := range jobs {
		if job.ID == jobID {
			return job, true
		}
	}
	return client.Job{}, false
}

func mergeJob(job *client.Job, changes client.Job) {
	if changes.Company != "" {
		job.Company = changes.Company
	}
	if changes.Role != "" {
		job.Role = changes.Role
	}
	if changes.Status != "" {
		job.Status = changes.Status
	}
	if changes.Source != "" {
		job.Source = changes.Source
	}
	if changes.AppliedDate != "" {
		job.AppliedDate = changes.AppliedDate
	}
}

func newJobsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a job application",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(guard.AccessAuthenticated); err != nil {
				return err
			}

			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}

			apiClient, err := newClient(client.SurfaceDashboard)
			if err != nil {
				return err
			}

			if err := apiClient.DeleteJob(jobID); err != nil {
				return fmt.Errorf("failed to delete application: %w", err)
			}

			fmt.Printf("✓ Deleted application #%d\n", jobID)
			return nil
		},
	}
}
