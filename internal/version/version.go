// Package version reports which build of substance is running.
//
// Release builds stamp Version, Commit and Date with ldflags:
//
//	-ldflags "-X github.com/jmylchreest/substance/internal/version.Version=x.y.z"
//
// Anything left unset is filled from the module and VCS information the Go
// toolchain embeds in every binary, so `go install` builds still report
// where they came from.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time. Empty means unset.
var (
	Version string
	Commit  string
	Date    string
)

// shortCommit is how much of a commit hash String prints.
const shortCommit = 8

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

// resolve merges the ldflags values with bi, which may be nil. Stamped
// values win.
func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi != nil {
		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

// String renders the build on one line, omitting what is unknown.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "substance version %s (", i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&b, "commit: %s", i.Commit[:min(len(i.Commit), shortCommit)])
		if i.Dirty {
			b.WriteString("-dirty")
		}
		b.WriteString(", ")
	}
	if i.Date != "" {
		fmt.Fprintf(&b, "built: %s, ", i.Date)
	}
	fmt.Fprintf(&b, "%s, %s)", i.GoVersion, i.Platform)
	return b.String()
}
