// Package misc holds small helpers with no better home.
package misc

import (
	"runtime/debug"
)

const appName = "spritefn"

// GetAppName returns the program name used in logs and file names.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version from build info, or "devel" when
// built outside of a module context.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}

// GetGitHash returns the VCS revision recorded in build info, if any.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
