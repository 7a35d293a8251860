package ultrastar

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the ultrastar library.
const Version = "0.3.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string // set via ldflags, or read from VCS build info
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns build details for the binary.
//
// GitCommit and BuildTime may be injected at link time:
//
//	go build -ldflags="-X github.com/simonhull/ultrastar.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/ultrastar.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Without ldflags they fall back to the VCS stamp recorded by the Go
// toolchain, then to "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "unknown":
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "unknown":
				info.BuildTime = s.Value
			}
		}
	}

	return info
}

var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
