package main

import (
	"os"

	"github.com/vulkan-va/vavk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
