package cli

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "taskboard"

	// SessionFile holds the persisted auth session.
	SessionFile = "session.json"

	// DefaultServerURL is used when neither --server nor TASKBOARD_URL is set.
	DefaultServerURL = "http://localhost:8080"

	// ServerURLEnv overrides DefaultServerURL.
	ServerURLEnv = "TASKBOARD_URL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// ServerURL is the base URL of the taskboard API.
	ServerURL string

	// Quiet suppresses informational output.
	Quiet bool
}

// NewConfig creates a Config. Empty arguments select the defaults.
func NewConfig(configDir, serverURL string) *Config {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if serverURL == "" {
		serverURL = os.Getenv(ServerURLEnv)
	}
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	return &Config{Dir: configDir, ServerURL: serverURL}
}

// DefaultConfigDir returns XDG_CONFIG_HOME/taskboard, or ~/.config/taskboard.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path of the session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}
