package build

import (
	"fmt"
	"strings"
)

// set at build time via ldflags
var version string
var buildstamp string
var githash string

func Version() (string, string, string) {
	return version, githash, buildstamp
}

func VersionString() string {
	var versionString string
	switch {
	case version != "":
		if githash != "" && IsDevelop() {
			versionString = version + " (" + githash + ")"
		} else {
			versionString = version
		}
	case githash != "":
		versionString = githash
	default:
		versionString = "unknown"
	}
	if buildstamp != "" {
		versionString = fmt.Sprintf("%s - %s", versionString, buildstamp)
	}
	return versionString
}

// IsDevelop is true for untagged builds, where the version carries a
// commit-count suffix.
func IsDevelop() bool {
	return version == "" || strings.Contains(version, "-")
}
