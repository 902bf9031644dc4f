// Package version holds the build information stamped into loginform
// with -ldflags "-X github.com/reglet-dev/loginform/internal/version.Version=...".
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release version
	Version = "dev"
	// Commit is the source revision
	Commit = "unknown"
	// BuildDate is when the binary was built
	BuildDate = "unknown"
)

// Info describes one loginform build.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the release version. Reports carry this value.
func (i Info) String() string {
	return i.Version
}

// Full returns the version with commit, build date and toolchain.
func (i Info) Full() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
