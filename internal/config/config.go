package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds environment-level configuration. Project-level settings (the
// service URL committed alongside a project) live in internal/cli/config;
// everything here can override them per user or per shell.
type Config struct {
	// API Configuration
	API APIConfig

	// Logging Configuration
	Logging LoggingConfig

	// Credentials for non-interactive login (CI, scripts)
	Credentials CredentialsConfig
}

// APIConfig holds API endpoint configuration
type APIConfig struct {
	URL string // overrides the project config when set
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// CredentialsConfig holds login credentials supplied via the environment
type CredentialsConfig struct {
	Email    string
	Password string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// Logging defaults: human-readable output on a terminal tool
	logLevel := os.Getenv("JOBTRACK_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}

	logFormat := os.Getenv("JOBTRACK_LOG_FORMAT")
	if logFormat == "" {
		logFormat = "console"
	}

	return &Config{
		API: APIConfig{
			URL: os.Getenv("JOBTRACK_API_URL"),
		},
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
		Credentials: CredentialsConfig{
			Email:    os.Getenv("JOBTRACK_EMAIL"),
			Password: os.Getenv("JOBTRACK_PASSWORD"),
		},
	}, nil
}
