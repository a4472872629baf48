package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ishworgurung/tilix/internal/errors"
)

// DefaultProfileName is the profile used when neither the command line nor
// the config names one.
const DefaultProfileName = "default"

// Config holds the application configuration
type Config struct {
	DefaultProfile       string `json:"default_profile,omitempty"`       // Profile applied when none is requested
	Theme                string `json:"theme,omitempty"`                 // UI theme name
	FocusNewWindow       bool   `json:"focus_new_window,omitempty"`      // Focus newly created windows
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications on process exit

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tilix"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

// loadFrom reads the config from an explicit path. Split out for testing.
func loadFrom(path string) (*Config, error) {
	cfg := &Config{
		DefaultProfile: DefaultProfileName,
		filePath:       path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills in defaults after unmarshaling. Not thread-safe;
// only called during single-threaded initialization before the Config is
// shared.
func (c *Config) ensureInitialized() {
	if c.DefaultProfile == "" {
		c.DefaultProfile = DefaultProfileName
	}
}

// Validate checks the config for inconsistencies
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.DefaultProfile == "" {
		return errors.ConfigInvalid("default profile must not be empty")
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	// Write to a temp file and rename so a crash cannot truncate the config
	tmp := c.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmp, c.filePath); err != nil {
		return errors.ConfigSaveFailed(c.filePath, fmt.Errorf("rename: %w", err))
	}
	return nil
}

// GetDefaultProfile returns the profile to apply when none is requested
func (c *Config) GetDefaultProfile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DefaultProfile
}

// SetDefaultProfile updates the default profile
func (c *Config) SetDefaultProfile(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if name == "" {
		name = DefaultProfileName
	}
	c.DefaultProfile = name
}

// GetTheme returns the configured UI theme
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme updates the UI theme
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetFocusNewWindow reports whether new windows should take focus
func (c *Config) GetFocusNewWindow() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.FocusNewWindow
}

// SetFocusNewWindow updates the focus-new-window setting
func (c *Config) SetFocusNewWindow(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.FocusNewWindow = v
}
