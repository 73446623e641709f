package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobtrack-dev/jobtrack/internal/cli/commands"
	"github.com/jobtrack-dev/jobtrack/internal/cli/update"
	"github.com/jobtrack-dev/jobtrack/internal/config"
	"github.com/jobtrack-dev/jobtrack/internal/logger"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "JobTracker - track your job applications from the terminal",
	Long: `JobTracker CLI - Log applications, follow their progress, and manage
accounts, against a shared JobTracker service.

Sessions persist across runs: log in once, then every command is
authenticated until you log out or the service rejects the session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logger.Init("warn", "console")
			return
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	},
}

func init() {
	// Add version command
	var checkLatest bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("jobtrack version %s\n", version)
			if !checkLatest {
				return nil
			}
			newer, latest, err := update.Check(version)
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}
			if newer {
				fmt.Printf("A newer release is available: %s\n", latest)
			} else {
				fmt.Println("You are on the latest release.")
			}
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&checkLatest, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)

	// Add all subcommands
	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewJobsCmd())
	rootCmd.AddCommand(commands.NewDashboardCmd())
	rootCmd.AddCommand(commands.NewAdminCmd())
}

// Execute runs the root command. Errors surface exactly once here, as a
// single line on stderr; nothing below retries or re-reports them.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
