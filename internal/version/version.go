package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Release builds set these through -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BuildInfo describes the running postlint binary
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
}

// Get returns the build info. Values not set by the linker are filled from
// the module and VCS data embedded by `go install`/`go build`, when present.
func Get() BuildInfo {
	bi := BuildInfo{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromBuild(&bi, info)
	}
	return bi
}

func fillFromBuild(bi *BuildInfo, info *debug.BuildInfo) {
	if bi.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		bi.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" && s.Value != "" {
				bi.Commit = s.Value[:min(len(s.Value), 12)]
			}
		case "vcs.time":
			if bi.Date == "unknown" && s.Value != "" {
				bi.Date = s.Value
			}
		}
	}
}

// String renders the one-line `postlint version` output
func (bi BuildInfo) String() string {
	return fmt.Sprintf("postlint %s (%s) built on %s with %s", bi.Version, bi.Commit, bi.Date, bi.GoVersion)
}

// Short returns just the version string
func Short() string {
	return Get().Version
}
