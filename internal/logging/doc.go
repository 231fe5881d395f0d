// Package logging provides structured logging with per-module log level
// configuration for the vavk driver and its CLI.
//
// # Overview
//
// The logging system uses Go's slog package with automatic output routing:
//   - Logs to systemd journal when available (Linux systems with journald)
//   - Logs to stdout when a terminal, pipe, or file is connected
//   - Logs to both when both are available
//
// A driver shared object is loaded into arbitrary host processes
// (players, browsers, compositors), so stdout may be anything or
// nothing; the journal route keeps diagnostics reachable either way.
//
// # Usage
//
// Initialize once, typically from driver init or CLI startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",      // Global log level: debug, info, warn, error
//		Format: "text",      // Output format: text or json
//		Modules: map[string]string{
//			"vulkan": "debug", // Per-module overrides
//			"drm":    "warn",
//		},
//	})
//
// Get a logger for your module:
//
//	logger := logging.GetLogger("backend")
//	logger.Info("selected physical device", "name", name)
//
// # Modules
//
// The driver logs under these module names: "driver", "dispatch",
// "drm", "vulkan", "backend", "config", "cli".
//
// # Viewing Logs
//
// On a system with journald:
//
//	journalctl -t vavk              # All driver logs
//	journalctl -t vavk -f           # Follow live
//	journalctl -t vavk -p err       # Errors only
//	journalctl -t vavk MODULE=vulkan
//
// # Recent-log buffer
//
// All records additionally land in an in-memory ring buffer. The CLI's
// probe command can dump it after a run, and an embedding host can read
// it through GetBuffer without caring where stdout went.
//
// # Configuration
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//
//	[logging.modules]
//	vulkan = "debug"
//	drm = "warn"
package logging
