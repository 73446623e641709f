package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const ConfigFileName = "jobtrack.json"

// Config is the project configuration file, committed next to the work it
// belongs to (like an editor config). It names the JobTracker service the
// CLI talks to.
type Config struct {
	APIURL string `json:"api_url"`
}

// DefaultConfig returns a configuration pointing at a local service
func DefaultConfig() *Config {
	return &Config{
		APIURL: "http://localhost:8080/api",
	}
}

// Validate checks that the configured API URL is usable
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is empty. Please edit %s and add the service URL", ConfigFileName)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url %q is not a valid http(s) URL", c.APIURL)
	}

	return nil
}

// BaseURL returns the API URL without a trailing slash, so request paths can
// be joined with plain concatenation.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.APIURL, "/")
}

// FindConfigFile searches for jobtrack.json in the current directory and its
// parents
func FindConfigFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := currentDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", ConfigFileName, currentDir)
}

// Load reads the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadFromCurrentDir loads config from the current directory or its parents
func LoadFromCurrentDir() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return nil, err
	}

	return Load(configPath)
}

// Save writes the configuration to a file
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
