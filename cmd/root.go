// Package cmd holds the vavk diagnostic CLI. The driver proper is
// loaded by the host as a shared object; the CLI runs the same
// discovery path standalone so capability problems can be debugged
// without a media stack.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vulkan-va/vavk/internal/config"
	"github.com/vulkan-va/vavk/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vavk",
	Short: "Diagnostics for the Vulkan Video VA-API driver",
	Long: `vavk probes the Vulkan Video capabilities the driver would expose for
a DRM device node and reports them without involving a media stack.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			path = config.Path()
		}
		cfg, err := config.Load(path)
		if err != nil {
			cfg = config.Default()
		}
		logging.Initialize(cfg.Logging)
		if err != nil {
			slog.Warn("failed to load config, using defaults", "path", path, "error", err)
		}
		loadedConfig = cfg
	},
}

// loadedConfig is the configuration resolved by the persistent pre-run
// for use by subcommands.
var loadedConfig config.Config

// Execute runs the root command and returns its error for main to turn
// into an exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
}
