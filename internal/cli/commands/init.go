package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jobtrack-dev/jobtrack/internal/cli/config"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a jobtrack.json configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(apiURL)
		},
	}

	cmd.Flags().StringVar(&apiURL, "url", "", "JobTracker service URL (defaults to a local service)")

	return cmd
}

func runInit(apiURL string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(currentDir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in this directory", config.ConfigFileName)
	}

	cfg := config.DefaultConfig()
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", config.ConfigFileName)
	fmt.Printf("  Service URL: %s\n", cfg.APIURL)
	fmt.Println("\nNext: run 'jobtrack register' to create an account, or 'jobtrack login' if you have one.")

	return nil
}
