package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobtrack-dev/jobtrack/internal/cli/guard"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

// runWhoami renders the locally persisted user record. It deliberately makes
// no network call: a stale session surfaces on the next real request.
func runWhoami() error {
	if err := requireAccess(guard.AccessAuthenticated); err != nil {
		return err
	}

	sess, err := currentSession()
	if err != nil {
		return err
	}

	user := sess.User
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	fmt.Printf("  Role: %s\n", user.Role)
	if !user.IsActive {
		fmt.Println("  Account: deactivated")
	}

	return nil
}
