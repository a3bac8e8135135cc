// Package buildinfo reports the terminal-guard version from Go build metadata.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// Version returns the module version for tagged installs ("v0.2.0"),
// "dev-<hash>[-dirty]" for VCS builds, "dev" without VCS data, and
// "unknown" when the binary carries no build info at all.
func Version() string {
	info, ok := readBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion(info.Settings)
}

// Long returns the version followed by the Go toolchain that built it.
func Long() string {
	info, ok := readBuildInfo()
	if !ok {
		return Version()
	}
	return fmt.Sprintf("%s (%s)", Version(), info.GoVersion)
}

func devVersion(settings []debug.BuildSetting) string {
	var revision string
	var modified bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified {
		return "dev-" + revision + "-dirty"
	}
	return "dev-" + revision
}
