// Package version holds build metadata set at link time.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Set via -ldflags "-X github.com/rshade/carbonlens/pkg/version.version=...".
var (
	version   = "0.0.0-dev" //nolint:gochecknoglobals // set by linker
	gitCommit = "unknown"   //nolint:gochecknoglobals // set by linker
	buildDate = "unknown"   //nolint:gochecknoglobals // set by linker
)

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Parse parses v as a semantic version, accepting a leading "v".
func Parse(v string) (*semver.Version, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", v, err)
	}
	return sv, nil
}

// IsRelease reports whether v is a valid semantic version without a
// prerelease suffix.
func IsRelease(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}

// String returns the full version line printed by the version command.
func String() string {
	kind := "development build"
	if IsRelease(version) {
		kind = "release"
	}
	return fmt.Sprintf("carbonlens %s (%s)\n  commit: %s\n  built:  %s\n  go:     %s %s/%s",
		version, kind, gitCommit, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
