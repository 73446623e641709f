package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
	"github.com/jobtrack-dev/jobtrack/internal/cli/guard"
	"github.com/jobtrack-dev/jobtrack/internal/cli/session"
)

// NewAdminCmd creates the admin command group
func NewAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer user accounts",
	}

	cmd.AddCommand(newAdminUsersCmd())
	cmd.AddCommand(newAdminStatsCmd())
	cmd.AddCommand(newAdminUserActionCmd("grant", "Grant admin privileges to a user",
		func(c *client.Client, id int64) (*client.UserActionResponse, error) { return c.MakeAdmin(id) }))
	cmd.AddCommand(newAdminUserActionCmd("revoke", "Revoke a user's admin privileges",
		func(c *client.Client, id int64) (*client.UserActionResponse, error) { return c.RevokeAdmin(id) }))
	cmd.AddCommand(newAdminUserActionCmd("activate", "Re-enable a deactivated account",
		func(c *client.Client, id int64) (*client.UserActionResponse, error) { return c.ActivateUser(id) }))
	cmd.AddCommand(newAdminUserActionCmd("deactivate", "Disable a user account",
		func(c *client.Client, id int64) (*client.UserActionResponse, error) { return c.DeactivateUser(id) }))
	cmd.AddCommand(newAdminRemoveCmd())

	return cmd
}

func newAdminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "users",
		Aliases: []string{"ls"},
		Short:   "List all registered users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(guard.AccessAdminOnly); err != nil {
				return err
			}

			apiClient, err := newClient(client.SurfaceAdmin)
			if err != nil {
				return err
			}

			users, err := apiClient.Users()
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return renderUsers(users, os.Stdout)
		},
	}
}

func renderUsers(users []session.UserRecord, out io.Writer) error {
	if len(users) == 0 {
		fmt.Fprintln(out, "No users found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
	fmt.Fprintln(w, "──\t────\t─────\t────\t──────")

	for _, user := range users {
		active := "yes"
		if !user.IsActive {
			active = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			user.ID,
			user.Name,
			user.Email,
			user.Role,
			active,
		)
	}

	return w.Flush()
}

func newAdminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate user statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(guard.AccessAdminOnly); err != nil {
				return err
			}

			apiClient, err := newClient(client.SurfaceAdmin)
			if err != nil {
				return err
			}

			stats, err := apiClient.Statistics()
			if err != nil {
				return fmt.Errorf("failed to load statistics: %w", err)
			}

			fmt.Printf("Users: %d total\n", stats.TotalUsers)
			fmt.Printf("  Active:   %d\n", stats.ActiveUsers)
			fmt.Printf("  Inactive: %d\n", stats.InactiveUsers)
			fmt.Printf("  Admins:   %d\n", stats.AdminUsers)
			return nil
		},
	}
}

// newAdminUserActionCmd builds one of the PUT-style user management commands
func newAdminUserActionCmd(use, short string, action func(*client.Client, int64) (*client.UserActionResponse, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(guard.AccessAdminOnly); err != nil {
				return err
			}

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			apiClient, err := newClient(client.SurfaceAdmin)
			if err != nil {
				return err
			}

			resp, err := action(apiClient, userID)
			if err != nil {
				return err
			}

			if resp.Message != "" {
				fmt.Printf("✓ %s\n", resp.Message)
			}
			if resp.User != nil {
				fmt.Printf("  %s <%s> role=%s active=%t\n", resp.User.Name, resp.User.Email, resp.User.Role, resp.User.IsActive)
			}
			return nil
		},
	}
}

func newAdminRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <user-id>",
		Short: "Permanently delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(guard.AccessAdminOnly); err != nil {
				return err
			}

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			apiClient, err := newClient(client.SurfaceAdmin)
			if err != nil {
				return err
			}

			if err := apiClient.DeleteUser(userID); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Printf("✓ Deleted user #%d\n", userID)
			return nil
		},
	}
}
