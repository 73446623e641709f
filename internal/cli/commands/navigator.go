package commands

import (
	"fmt"
	"io"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
)

// hintNavigator is the CLI's navigation target. A terminal cannot change
// pages, so "navigate" means telling the user which command to run next.
// The client already guarantees this fires at most once per invalidation.
type hintNavigator struct {
	out io.Writer
}

func (n *hintNavigator) NavigateTo(surface client.Surface) {
	switch surface {
	case client.SurfaceLogin:
		fmt.Fprintln(n.out, "Your session has ended. Run 'jobtrack login' to sign in again.")
	case client.SurfaceDashboard:
		fmt.Fprintln(n.out, "Run 'jobtrack dashboard' to see your applications.")
	case client.SurfaceHome:
		fmt.Fprintln(n.out, "Run 'jobtrack --help' to see available commands.")
	}
}
