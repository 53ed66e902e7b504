package version

import (
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			version = info.Main.Version
		}

		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if len(setting.Value) > 7 {
					commit = setting.Value[:7]
				} else if setting.Value != "" {
					commit = setting.Value
				}
			case "vcs.time":
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					date = t.Format("02/01/2006")
				}
			}
		}
	}
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}

func Date() string {
	return date
}

// PreRelease reports whether the version carries a pre-release suffix
// ("v1.4.0-rc.1"). Development builds count as pre-release.
func PreRelease() bool {
	return isPreRelease(version)
}

func isPreRelease(v string) bool {
	if v == "dev" {
		return true
	}

	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return true
	}

	return semver.Prerelease(v) != ""
}

// Debug reports whether the binary was built with the debug tag.
func Debug() bool {
	return debugBuild
}

// ShowDebugMenu reports whether debug menu entries are built.
func ShowDebugMenu() bool {
	return Debug() || PreRelease()
}
