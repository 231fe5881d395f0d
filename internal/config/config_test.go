package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() with missing file should not error: %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("default level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("default format = %q, want text", cfg.Logging.Format)
	}
	if !cfg.Vulkan.Validation {
		t.Error("validation should default to enabled")
	}
	if cfg.Vulkan.Library != "" {
		t.Errorf("default library = %q, want empty", cfg.Vulkan.Library)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vavk.toml")
	content := `
watch = true

[logging]
level = "debug"
format = "json"

[logging.modules]
vulkan = "warn"

[vulkan]
library = "/opt/vulkan/libvulkan.so.1"
validation = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v, want debug/json", cfg.Logging)
	}
	if cfg.Logging.Modules["vulkan"] != "warn" {
		t.Errorf("module override = %q, want warn", cfg.Logging.Modules["vulkan"])
	}
	if cfg.Vulkan.Library != "/opt/vulkan/libvulkan.so.1" {
		t.Errorf("library = %q", cfg.Vulkan.Library)
	}
	if cfg.Vulkan.Validation {
		t.Error("validation should be disabled by file")
	}
	if !cfg.Watch {
		t.Error("watch should be enabled by file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vavk.toml")
	if err := os.WriteFile(path, []byte("[logging\nlevel"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should report malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vavk.toml")
	content := "[logging]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("VAVK_LOG_LEVEL", "error")
	t.Setenv("VAVK_VULKAN_LIBRARY", "/usr/local/lib/libvulkan.so")
	t.Setenv("VAVK_VALIDATION", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Logging.Level != "error" {
		t.Errorf("env should win over file: level = %q, want error", cfg.Logging.Level)
	}
	if cfg.Vulkan.Library != "/usr/local/lib/libvulkan.so" {
		t.Errorf("library = %q", cfg.Vulkan.Library)
	}
	if cfg.Vulkan.Validation {
		t.Error("VAVK_VALIDATION=false should disable validation")
	}
}

func TestMalformedBoolEnvIgnored(t *testing.T) {
	t.Setenv("VAVK_VALIDATION", "maybe")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Vulkan.Validation {
		t.Error("malformed boolean should leave the default in place")
	}
}

func TestPath(t *testing.T) {
	t.Setenv("VAVK_CONFIG", "")
	if Path() != DefaultPath {
		t.Errorf("Path() = %q, want %q", Path(), DefaultPath)
	}

	t.Setenv("VAVK_CONFIG", "/tmp/custom.toml")
	if Path() != "/tmp/custom.toml" {
		t.Errorf("Path() = %q, want override", Path())
	}
}
