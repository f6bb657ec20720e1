package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataDir == "" {
		t.Error("expected non-empty default data dir")
	}
	if cfg.Theme != "auto" {
		t.Errorf("expected Theme=auto, got %s", cfg.Theme)
	}
	if cfg.Logging.DebugMode {
		t.Error("expected DebugMode off by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("HABITCLI_DATA_DIR", "")
	t.Setenv("HABITCLI_THEME", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(tmpDir, "data")
	cfg.Theme = "dark"
	cfg.Logging.DebugMode = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Errorf("expected DataDir=%s, got %s", cfg.DataDir, loaded.DataDir)
	}
	if !loaded.Logging.DebugMode {
		t.Error("expected DebugMode=true after reload")
	}
}

func TestConfig_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("HABITCLI_DATA_DIR", "")
	t.Setenv("HABITCLI_THEME", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "auto" {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	os.Setenv("HABITCLI_DATA_DIR", "/tmp/habit-env")
	defer os.Unsetenv("HABITCLI_DATA_DIR")
	os.Setenv("HABITCLI_THEME", "dark")
	defer os.Unsetenv("HABITCLI_THEME")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/tmp/habit-env" {
		t.Errorf("expected DataDir override, got %s", cfg.DataDir)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected Theme override, got %s", cfg.Theme)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg.Theme = "solarized"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown theme")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown log level")
	}

	cfg = DefaultConfig()
	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty data dir")
	}
}
