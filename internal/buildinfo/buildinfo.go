// Package buildinfo carries version metadata stamped in with -ldflags:
//
//	-X graphx/internal/buildinfo.Version=v1.2.0 -X graphx/internal/buildinfo.Commit=$(git rev-parse --short HEAD)
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build description.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
