package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
	"github.com/jobtrack-dev/jobtrack/internal/logger"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	// Logout is a local guarantee: it needs no config file and no
	// reachable service, so the client is built without a base URL.
	apiClient := client.New("", defaultStore)
	apiClient.SetNavigator(&hintNavigator{out: os.Stderr})
	apiClient.SetLogger(logger.GetLogger())

	if err := apiClient.Logout(); err != nil {
		return err
	}

	fmt.Println("✓ Signed out.")
	return nil
}
