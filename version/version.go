// Package version provides build version information embedding.
//
// Version and commit are set at build time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/synthkit/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is set at build time using -ldflags.
	Version = "dev"
	// GitCommit is set at build time using -ldflags, or read from build info.
	GitCommit = ""
)

// Short returns a short version string like "1.0.0-3f2a1bc".
func Short() string {
	commit := GitCommit
	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
					break
				}
			}
		}
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return Version
	}
	return fmt.Sprintf("%s-%s", Version, commit)
}
