// Package config holds the MCPLink client and server configuration.
//
// Configuration is layered: built-in defaults, then the optional YAML
// config file, then environment variables. The Gemini API key is only
// ever read from the environment (optionally populated from a .env
// file) and is never written to disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mcplink/mcplink/paths"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash-001"

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// Environment overrides for config file fields.
const (
	modelEnv     = "MCPLINK_MODEL"
	workspaceEnv = "MCPLINK_WORKSPACE"
	debugEnv     = "MCPLINK_DEBUG"
)

// Config holds the application configuration
type Config struct {
	Model     string `yaml:"model,omitempty"`     // Gemini model ID
	Workspace string `yaml:"workspace,omitempty"` // Directory server tools operate in
	Debug     bool   `yaml:"debug,omitempty"`     // Enable debug logging

	mu       sync.RWMutex
	filePath string
}

// Load reads the config from disk, or returns defaults if no file exists.
// Environment variables override file values.
func Load() (*Config, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnvFile loads a .env file from the current directory if one exists.
// A missing file is not an error; a malformed one is.
func LoadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// APIKey returns the Gemini API key from the environment, or an error
// telling the user how to supply it. The key is required before any
// session starts.
func APIKey() (string, error) {
	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s not found: add it to your environment or .env file", APIKeyEnv)
	}
	return key, nil
}

// applyEnv overlays environment variable overrides onto the config.
// Only called during single-threaded initialization.
func (c *Config) applyEnv() {
	if v := os.Getenv(modelEnv); v != "" {
		c.Model = v
	}
	if v := os.Getenv(workspaceEnv); v != "" {
		c.Workspace = v
	}
	if v := os.Getenv(debugEnv); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Workspace != "" && !filepath.IsAbs(c.Workspace) {
		return fmt.Errorf("workspace must be an absolute path, got %q", c.Workspace)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// SetFilePath sets the config file path (for testing).
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetModel returns the configured model ID, defaulting to DefaultModel
func (c *Config) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// SetModel sets the model ID
func (c *Config) SetModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Model = model
}

// GetWorkspace returns the workspace directory the server tools operate in,
// defaulting to the data-dir workspace.
func (c *Config) GetWorkspace() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Workspace != "" {
		return c.Workspace, nil
	}
	return paths.WorkspaceDir()
}

// SetWorkspace sets the workspace directory
func (c *Config) SetWorkspace(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Workspace = dir
}

// GetDebug returns whether debug logging is enabled
func (c *Config) GetDebug() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Debug
}

// SetDebug sets whether debug logging is enabled
func (c *Config) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Debug = enabled
}
