// Package config provides repository configuration management,
// including reading and writing pushit configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the name of the config file inside .git
const ConfigFileName = ".pushit_config"

// DefaultMessage is the commit message used when none is configured
const DefaultMessage = "temp commit"

// DefaultRemote is the remote used when none is configured
const DefaultRemote = "origin"

// defaultProtectedBranches are the branches that prompt before pushing
var defaultProtectedBranches = []string{"main", "master"}

// Config represents the repository configuration
type Config struct {
	Message           *string  `json:"message,omitempty"`
	Remote            *string  `json:"remote,omitempty"`
	NoPush            *bool    `json:"noPush,omitempty"`
	ProtectedBranches []string `json:"protectedBranches,omitempty"`

	repoRoot string
}

// LoadConfig reads the repository configuration.
// A missing file is not an error; defaults apply.
func LoadConfig(repoRoot string) (*Config, error) {
	cfg := &Config{repoRoot: repoRoot}

	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	cfg.repoRoot = repoRoot

	return cfg, nil
}

// Save writes the configuration back to .git/.pushit_config
func (c *Config) Save() error {
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(c.repoRoot), configJSON, 0600)
}

// GetMessage returns the configured commit message, or the default
func (c *Config) GetMessage() string {
	if c.Message != nil && *c.Message != "" {
		return *c.Message
	}
	return DefaultMessage
}

// GetRemote returns the configured remote name, or the default
func (c *Config) GetRemote() string {
	if c.Remote != nil && *c.Remote != "" {
		return *c.Remote
	}
	return DefaultRemote
}

// GetNoPush returns whether pushing is disabled by config
func (c *Config) GetNoPush() bool {
	return c.NoPush != nil && *c.NoPush
}

// GetProtectedBranches returns the branches that prompt before pushing
func (c *Config) GetProtectedBranches() []string {
	if len(c.ProtectedBranches) > 0 {
		return c.ProtectedBranches
	}
	return defaultProtectedBranches
}

// IsProtected reports whether a branch is in the protected list
func (c *Config) IsProtected(branchName string) bool {
	for _, b := range c.GetProtectedBranches() {
		if b == branchName {
			return true
		}
	}
	return false
}

// Set updates a single config key from its string representation
func (c *Config) Set(key, value string) error {
	switch key {
	case "message":
		c.Message = &value
	case "remote":
		c.Remote = &value
	case "noPush":
		v := value == "true"
		if !v && value != "false" {
			return fmt.Errorf("noPush must be true or false, got %q", value)
		}
		c.NoPush = &v
	case "protectedBranches":
		var branches []string
		for _, b := range strings.Split(value, ",") {
			if b = strings.TrimSpace(b); b != "" {
				branches = append(branches, b)
			}
		}
		if len(branches) == 0 {
			return fmt.Errorf("protectedBranches needs a comma-separated list of branch names")
		}
		c.ProtectedBranches = branches
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ConfigFileName)
}
