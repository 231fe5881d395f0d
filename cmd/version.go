package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vulkan-va/vavk/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("vavk %s\n", info.Version)
		fmt.Printf("  commit:     %s\n", info.GitCommit)
		fmt.Printf("  built:      %s\n", info.BuildDate)
		fmt.Printf("  go version: %s\n", info.GoVersion)
		fmt.Printf("  platform:   %s\n", info.Platform)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
