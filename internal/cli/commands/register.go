package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
	"github.com/jobtrack-dev/jobtrack/internal/cli/forms"
	"github.com/jobtrack-dev/jobtrack/internal/cli/prompt"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a JobTracker account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(name, email, password)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")

	return cmd
}

// Prompt seams, swapped for stubs in tests
var (
	promptInput    = prompt.Input
	promptPassword = prompt.Password
)

// fillRegisterInteractively prompts for every field not supplied via flags
func fillRegisterInteractively(name, email, password *string, interactive bool) error {
	if !interactive {
		return nil
	}

	var err error
	if *name == "" {
		if *name, err = promptInput("Full name"); err != nil {
			return err
		}
	}
	if *email == "" {
		if *email, err = promptInput("Email"); err != nil {
			return err
		}
	}
	if *password == "" {
		if *password, err = promptPassword("Password"); err != nil {
			return err
		}
	}
	return nil
}

func runRegister(name, email, password string) error {
	if err := fillRegisterInteractively(&name, &email, &password, prompt.Interactive()); err != nil {
		return err
	}

	// Same rules the server applies; catches typos without a round trip.
	if fields := forms.Validate(forms.RegisterForm{Name: name, Email: email, Password: password}); fields != nil {
		return fmt.Errorf("invalid registration: %s", fields.Flatten())
	}

	apiClient, err := newClient(client.SurfaceSignup)
	if err != nil {
		return err
	}

	regResp, err := apiClient.Register(client.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if regResp.Message != "" {
		fmt.Printf("✓ %s\n", regResp.Message)
	} else {
		fmt.Println("✓ Account created!")
	}
	// Registration never signs you in; that is an explicit separate step.
	fmt.Println("\nRun 'jobtrack login' to sign in.")

	return nil
}
