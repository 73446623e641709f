package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jobtrack-dev/jobtrack/internal/cli/client"
	cliconfig "github.com/jobtrack-dev/jobtrack/internal/cli/config"
	"github.com/jobtrack-dev/jobtrack/internal/cli/guard"
	"github.com/jobtrack-dev/jobtrack/internal/cli/session"
	"github.com/jobtrack-dev/jobtrack/internal/config"
	"github.com/jobtrack-dev/jobtrack/internal/logger"
)

// defaultStore is the session store commands share. Swapped for a memory
// store in tests.
var defaultStore session.Store = session.NewDurableStore()

// resolveBaseURL returns the API base URL: JOBTRACK_API_URL when set,
// otherwise the project's jobtrack.json.
func resolveBaseURL() (string, error) {
	envCfg, err := config.Load()
	if err == nil && envCfg.API.URL != "" {
		return envCfg.API.URL, nil
	}

	cfg, err := cliconfig.LoadFromCurrentDir()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w\nRun 'jobtrack init' to create a configuration file", err)
	}

	if err := cfg.Validate(); err != nil {
		return "", err
	}

	return cfg.BaseURL(), nil
}

// newClient builds the API client for a command, wiring in the shared
// session store and the stderr navigator.
func newClient(surface client.Surface) (*client.Client, error) {
	baseURL, err := resolveBaseURL()
	if err != nil {
		return nil, err
	}

	apiClient := client.New(baseURL, defaultStore)
	apiClient.SetSurface(surface)
	apiClient.SetNavigator(&hintNavigator{out: os.Stderr})
	apiClient.SetLogger(logger.GetLogger())
	return apiClient, nil
}

// requireAccess gates a command on the current session, translating the
// guard's decision into an actionable error. Evaluated fresh on every run.
func requireAccess(access guard.Access) error {
	switch guard.Evaluate(defaultStore, access) {
	case guard.RedirectLogin:
		return fmt.Errorf("not authenticated. Please run 'jobtrack login' first")
	case guard.RedirectHome:
		return fmt.Errorf("this command requires admin access. Run 'jobtrack dashboard' to see your own applications")
	}
	return nil
}

// currentSession returns the persisted session, or an error directing the
// user to log in
func currentSession() (*session.Session, error) {
	sess, err := defaultStore.Load()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("not authenticated. Please run 'jobtrack login' first")
	}
	return sess, nil
}

// parseID parses a positional numeric ID argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("'%s' is not a valid id", arg)
	}
	return id, nil
}
