// Package misc holds small helpers with no better home.
package misc

import (
	"runtime/debug"
	"strings"
)

const appName = "escx"

// set by the build system via -ldflags
var (
	version = ""
	gitHash = ""
)

func GetAppName() string {
	return appName
}

// GetVersion reports the release version, falling back to module build info
// for plain "go install" builds.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return strings.Repeat("0", 12)
}
