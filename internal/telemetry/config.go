// Package telemetry sends anonymous, opt-in usage events for Questifier.
// Task text never leaves the machine; only counts and labels are sent.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// StateFileName is the file holding the anonymous install ID.
const StateFileName = "telemetry.json"

// Config holds the telemetry switch and the anonymous install ID.
// Enabled comes from the telemetry.enabled setting; only AnonymousID is persisted.
type Config struct {
	Enabled     bool   `json:"-"`
	AnonymousID string `json:"anonymous_id"`
}

var (
	configDirOverride   string
	configDirOverrideMu sync.RWMutex
)

// SetConfigDir overrides the state directory (for testing).
// Pass an empty string to restore ~/.questifier.
func SetConfigDir(dir string) {
	configDirOverrideMu.Lock()
	defer configDirOverrideMu.Unlock()
	configDirOverride = dir
}

func getConfigDir() (string, error) {
	configDirOverrideMu.RLock()
	override := configDirOverride
	configDirOverrideMu.RUnlock()

	if override != "" {
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".questifier"), nil
}

// GetStatePath returns the full path to the telemetry state file.
func GetStatePath() (string, error) {
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StateFileName), nil
}

// Load reads the install ID, creating and saving one on first use.
// The returned Config is disabled; callers set Enabled from settings.
func Load() (*Config, error) {
	statePath, err := GetStatePath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := os.ReadFile(statePath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse telemetry state: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read telemetry state: %w", err)
	}

	if cfg.AnonymousID == "" {
		cfg.AnonymousID = uuid.NewString()
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Save writes the install ID with owner-only permissions.
func (c *Config) Save() error {
	statePath, err := GetStatePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(statePath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal telemetry state: %w", err)
	}
	if err := os.WriteFile(statePath, data, 0600); err != nil {
		return fmt.Errorf("write telemetry state: %w", err)
	}
	return nil
}

// IsEnabled reports whether events may be sent.
func (c *Config) IsEnabled() bool {
	return c != nil && c.Enabled
}
