// Package version carries build metadata injected via ldflags. The
// driver folds it into the vendor string published to the host.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the driver version, set via ldflags during build.
	Version = "dev"
	// GitCommit is the git commit hash, set via ldflags during build.
	GitCommit = "unknown"
	// BuildDate is the build timestamp, set via ldflags during build.
	BuildDate = "unknown"
)

// Info contains version and build metadata.
type Info struct {
	Version   string `json:"version" toml:"version"`
	GitCommit string `json:"git_commit" toml:"git_commit"`
	BuildDate string `json:"build_date" toml:"build_date"`
	GoVersion string `json:"go_version" toml:"go_version"`
	Platform  string `json:"platform" toml:"platform"`
}

// Get returns version and build information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the driver version string.
func String() string {
	return Version
}

// Vendor returns the vendor identification string published to the
// host contract.
func Vendor() string {
	return "vavk " + Version
}
