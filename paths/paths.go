// Package paths provides centralized path resolution for MCPLink's data directories.
//
// MCPLink supports the XDG Base Directory Specification for organizing files:
//
//   - Config (XDG_CONFIG_HOME): config.yaml — user settings worth syncing
//   - Data (XDG_DATA_HOME): workspace/ — the directory tools operate in
//   - State (XDG_STATE_HOME): logs/ — transient log files
//
// Resolution order:
//  1. If MCPLINK_DIR is set → use a flat layout under that directory
//  2. If ~/.mcplink/ exists → use legacy flat layout (all paths under ~/.mcplink/)
//  3. If XDG env vars are set → use XDG layout with proper separation
//  4. Fresh install, no XDG vars → default to ~/.mcplink/
package paths

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	mu       sync.Mutex
	resolved *resolvedPaths
)

type resolvedPaths struct {
	configDir string
	dataDir   string
	stateDir  string
	legacy    bool
}

// resolve computes the path layout once and caches it.
func resolve() (*resolvedPaths, error) {
	mu.Lock()
	defer mu.Unlock()

	if resolved != nil {
		return resolved, nil
	}

	// 1. Explicit override wins
	if dir := os.Getenv("MCPLINK_DIR"); dir != "" {
		resolved = &resolvedPaths{
			configDir: dir,
			dataDir:   dir,
			stateDir:  dir,
			legacy:    true,
		}
		return resolved, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	legacyDir := filepath.Join(home, ".mcplink")

	// 2. If ~/.mcplink/ exists, use legacy layout
	if info, err := os.Stat(legacyDir); err == nil && info.IsDir() {
		resolved = &resolvedPaths{
			configDir: legacyDir,
			dataDir:   legacyDir,
			stateDir:  legacyDir,
			legacy:    true,
		}
		return resolved, nil
	}

	// 3. Check XDG env vars
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	xdgData := os.Getenv("XDG_DATA_HOME")
	xdgState := os.Getenv("XDG_STATE_HOME")

	if xdgConfig != "" || xdgData != "" || xdgState != "" {
		// Use XDG layout — fill in defaults for unset vars
		if xdgConfig == "" {
			xdgConfig = filepath.Join(home, ".config")
		}
		if xdgData == "" {
			xdgData = filepath.Join(home, ".local", "share")
		}
		if xdgState == "" {
			xdgState = filepath.Join(home, ".local", "state")
		}
		resolved = &resolvedPaths{
			configDir: filepath.Join(xdgConfig, "mcplink"),
			dataDir:   filepath.Join(xdgData, "mcplink"),
			stateDir:  filepath.Join(xdgState, "mcplink"),
			legacy:    false,
		}
		return resolved, nil
	}

	// 4. Fresh install, no XDG — default to legacy
	resolved = &resolvedPaths{
		configDir: legacyDir,
		dataDir:   legacyDir,
		stateDir:  legacyDir,
		legacy:    true,
	}
	return resolved, nil
}

// ConfigDir returns the directory for configuration files (config.yaml).
func ConfigDir() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return r.configDir, nil
}

// ConfigFilePath returns the full path to config.yaml.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogsDir returns the directory for log files.
func LogsDir() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return filepath.Join(r.stateDir, "logs"), nil
}

// WorkspaceDir returns the default directory tools operate in.
func WorkspaceDir() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return filepath.Join(r.dataDir, "workspace"), nil
}

// IsLegacyLayout returns true if using the ~/.mcplink/ flat layout.
func IsLegacyLayout() bool {
	r, err := resolve()
	if err != nil {
		return true // assume legacy on error
	}
	return r.legacy
}

// Reset clears the cached path resolution. This is intended for testing only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	resolved = nil
}
