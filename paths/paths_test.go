package paths

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestHome creates a temp directory, sets HOME to it, and resets the path cache.
func setupTestHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("MCPLINK_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	Reset()
	t.Cleanup(Reset)
	return tmpDir
}

func TestFreshInstallNoXDG(t *testing.T) {
	home := setupTestHome(t)
	// No ~/.mcplink/, no XDG vars → default to ~/.mcplink/
	expected := filepath.Join(home, ".mcplink")

	configDir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if configDir != expected {
		t.Errorf("ConfigDir = %q, want %q", configDir, expected)
	}

	logsDir, err := LogsDir()
	if err != nil {
		t.Fatalf("LogsDir: %v", err)
	}
	if logsDir != filepath.Join(expected, "logs") {
		t.Errorf("LogsDir = %q, want %q", logsDir, filepath.Join(expected, "logs"))
	}

	workspace, err := WorkspaceDir()
	if err != nil {
		t.Fatalf("WorkspaceDir: %v", err)
	}
	if workspace != filepath.Join(expected, "workspace") {
		t.Errorf("WorkspaceDir = %q, want %q", workspace, filepath.Join(expected, "workspace"))
	}

	if !IsLegacyLayout() {
		t.Error("IsLegacyLayout should be true for fresh install without XDG")
	}
}

func TestExplicitDirOverride(t *testing.T) {
	setupTestHome(t)
	override := t.TempDir()
	t.Setenv("MCPLINK_DIR", override)
	Reset()

	configDir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if configDir != override {
		t.Errorf("ConfigDir = %q, want %q", configDir, override)
	}

	workspace, err := WorkspaceDir()
	if err != nil {
		t.Fatalf("WorkspaceDir: %v", err)
	}
	if workspace != filepath.Join(override, "workspace") {
		t.Errorf("WorkspaceDir = %q, want %q", workspace, filepath.Join(override, "workspace"))
	}
}

func TestLegacyDirExists(t *testing.T) {
	home := setupTestHome(t)
	legacyDir := filepath.Join(home, ".mcplink")
	if err := os.MkdirAll(legacyDir, 0755); err != nil {
		t.Fatal(err)
	}

	configDir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if configDir != legacyDir {
		t.Errorf("ConfigDir = %q, want %q", configDir, legacyDir)
	}

	if !IsLegacyLayout() {
		t.Error("IsLegacyLayout should be true when ~/.mcplink exists")
	}
}

func TestXDGLayout(t *testing.T) {
	home := setupTestHome(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))
	Reset()

	configDir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if configDir != filepath.Join(home, "cfg", "mcplink") {
		t.Errorf("ConfigDir = %q, want %q", configDir, filepath.Join(home, "cfg", "mcplink"))
	}

	// Unset XDG vars fall back to the standard XDG defaults
	logsDir, err := LogsDir()
	if err != nil {
		t.Fatalf("LogsDir: %v", err)
	}
	want := filepath.Join(home, ".local", "state", "mcplink", "logs")
	if logsDir != want {
		t.Errorf("LogsDir = %q, want %q", logsDir, want)
	}

	if IsLegacyLayout() {
		t.Error("IsLegacyLayout should be false with XDG vars set")
	}
}

func TestConfigFilePath(t *testing.T) {
	home := setupTestHome(t)

	fp, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath: %v", err)
	}
	if fp != filepath.Join(home, ".mcplink", "config.yaml") {
		t.Errorf("ConfigFilePath = %q", fp)
	}
}
