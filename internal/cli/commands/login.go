package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
	"github.com/jobtrack-dev/jobtrack/internal/cli/prompt"
	"github.com/jobtrack-dev/jobtrack/internal/config"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string
	var asAdmin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the JobTracker service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password, asAdmin)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set JOBTRACK_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set JOBTRACK_PASSWORD, will prompt if not provided)")
	cmd.Flags().BoolVar(&asAdmin, "admin", false, "Authenticate against the admin login endpoint")

	return cmd
}

func runLogin(email, password string, asAdmin bool) error {
	// Environment fallback (useful for CI and scripts)
	envCfg, err := config.Load()
	if err == nil {
		if email == "" {
			email = envCfg.Credentials.Email
		}
		if password == "" {
			password = envCfg.Credentials.Password
		}
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or JOBTRACK_EMAIL env var)")
	}

	if password == "" {
		if !prompt.Interactive() {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or JOBTRACK_PASSWORD env var)")
		}
		password, err = prompt.Password("Password")
		if err != nil {
			return err
		}
	}

	apiClient, err := newClient(client.SurfaceLogin)
	if err != nil {
		return err
	}

	loginResp, err := apiClient.Login(client.Credentials{Email: email, Password: password}, asAdmin)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", loginResp.User.Name, loginResp.User.Email)
	if loginResp.User.Role.IsAdmin() {
		fmt.Printf("  Role: %s\n", loginResp.User.Role)
	}

	return nil
}
