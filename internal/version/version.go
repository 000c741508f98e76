// Package version reports the build identity of the todod binary.
package version

import "fmt"

// These variables are set at build time via ldflags, e.g.
//
//	-X github.com/example/todod/internal/version.Version=v0.3.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the human-readable version reported by --version and at startup.
func String() string {
	return fmt.Sprintf("todod %s (commit: %s, built: %s)", Version, ShortCommit(), BuildTime)
}

// ShortCommit returns the first seven characters of the build commit.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
