// Package config loads driver configuration with the precedence
// env vars > config file > built-in defaults. The driver is loaded into
// host processes it does not control, so there are no CLI flags at this
// layer; the vavk CLI layers its own flags on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/vulkan-va/vavk/internal/logging"
)

// DefaultPath is the config file consulted when VAVK_CONFIG is unset.
const DefaultPath = "/etc/vavk.toml"

// VulkanConfig controls how the Vulkan backend is brought up.
type VulkanConfig struct {
	// Library overrides the Vulkan loader path. Empty means the
	// platform default (libvulkan.so.1).
	Library string `toml:"library"`
	// Validation enables the Khronos validation layer and the debug
	// messenger. On by default; turn off for production hosts that
	// cannot tolerate the overhead.
	Validation bool `toml:"validation"`
}

// Config is the full driver configuration.
type Config struct {
	Logging logging.Config `toml:"logging"`
	Vulkan  VulkanConfig   `toml:"vulkan"`
	// Watch re-applies logging levels when the config file changes
	// while the driver is resident in a host process.
	Watch bool `toml:"watch"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: logging.Config{
			Level:  "info",
			Format: "text",
		},
		Vulkan: VulkanConfig{
			Validation: true,
		},
	}
}

// Path returns the config file path, honoring the VAVK_CONFIG override.
func Path() string {
	if p := os.Getenv("VAVK_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the config file at path (missing file is not an error) and
// applies VAVK_* environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults only
	default:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv applies VAVK_* environment variable overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv("VAVK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("VAVK_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("VAVK_VULKAN_LIBRARY"); v != "" {
		cfg.Vulkan.Library = v
	}
	if v, ok := parseBoolEnv("VAVK_VALIDATION"); ok {
		cfg.Vulkan.Validation = v
	}
	if v, ok := parseBoolEnv("VAVK_WATCH"); ok {
		cfg.Watch = v
	}
}

func parseBoolEnv(name string) (bool, bool) {
	v := os.Getenv(name)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logging.GetLogger("config").Warn("ignoring malformed boolean env var",
			"name", name, "value", v)
		return false, false
	}
	return b, true
}
